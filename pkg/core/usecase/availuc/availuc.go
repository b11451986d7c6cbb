// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package availuc contains the availability UseCase, the arbitration
// engine which decides whether a vehicle is free over a range of
// calendar dates and which prevents conflicting claims (bookings and
// administrative blocked periods) from being created on overlapping
// windows. The supported use cases are:
//  1. Checking the availability of a vehicle over a date range,
//  2. Blocking a vehicle over a date range (the sole
//     invariant-enforcing write path),
//  3. Unblocking a vehicle entirely or removing one blocked period,
//  4. Projecting the per-vehicle availability of the whole fleet,
//  5. Listing the active blocked periods,
//  6. Aggregating the fleet-wide availability statistics.
package availuc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/log"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// UseCase represents the availability use case. It holds a database
// connection pool and the vehicles, bookings, and blocked periods
// repository instances (to be guided with the DB pool). All read
// operations run on a plain connection while the BlockVehicle write
// path runs its check-then-write sequence in one transaction, locking
// the vehicle row, so two concurrent calls may not both pass the
// overlap checks and violate the no-overlap invariant.
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	bookingsrp repo.Bookings
	blocksrp   repo.BlockedPeriods

	clock func() time.Time
}

// New instantiates an availability use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool,
	v repo.Vehicles, b repo.Bookings, bp repo.BlockedPeriods,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool: p, vehiclesrp: v, bookingsrp: b, blocksrp: bp,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.clock == nil {
		uc.clock = model.Today
	}
	return uc, nil
}

// today returns the current calendar date as seen by this use case.
func (avail *UseCase) today() time.Time {
	return model.Date(avail.clock())
}

// IsVehicleAvailable use case decides whether the vid vehicle is free
// over the period date range. A vehicle whose categorical status is
// maintenance is reported unavailable regardless of the requested
// dates. Otherwise, the vehicle is unavailable if any blocked period
// or any active booking claims an overlapping window. A booking which
// merely touches the requested window at a shared boundary date does
// not make the vehicle unavailable, permitting same-day turnovers.
// Unknown vehicles cause a cerr.NotFound error.
func (avail *UseCase) IsVehicleAvailable(
	ctx context.Context, vid uuid.UUID, period model.DateRange,
) (free bool, err error) {
	if err := period.Validate(); err != nil {
		return false, cerr.BadRequest(err)
	}
	err = avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			free, err = avail.isAvailable(ctx, c, vid, period)
			return err
		},
	)
	if err != nil {
		return false, err
	}
	return free, nil
}

func (avail *UseCase) isAvailable(
	ctx context.Context, c repo.Conn,
	vid uuid.UUID, period model.DateRange,
) (bool, error) {
	vq := avail.vehiclesrp.Conn(c)
	v, err := vq.FindByID(ctx, vid)
	if err != nil {
		return false, fmt.Errorf("finding vehicle: %w", err)
	}
	if v.Status == model.VehicleStatusMaintenance {
		return false, nil
	}
	blq := avail.blocksrp.Conn(c)
	blocks, err := blq.FindOverlapping(
		ctx, vid, period.Start, period.End,
	)
	if err != nil {
		return false, fmt.Errorf("finding overlapping blocks: %w", err)
	}
	if len(blocks) > 0 {
		return false, nil
	}
	bq := avail.bookingsrp.Conn(c)
	bookings, err := bq.FindActiveByVehicle(ctx, vid)
	if err != nil {
		return false, fmt.Errorf("finding active bookings: %w", err)
	}
	for i := range bookings {
		if bookings[i].Range().Overlaps(period) {
			return false, nil
		}
	}
	return true, nil
}

// BlockVehicle use case creates an administrative blocked period over
// the period date range for the vid vehicle. Both dates must lie
// strictly in the future (a block may not be back-dated or apply to
// the today date) and the reason may not be blank; violations cause a
// cerr.BadRequest error. A window which overlaps an existing blocked
// period or an active booking of the same vehicle is rejected with a
// cerr.Conflict error and no record is written. The overlap checks
// and the insertion run in one transaction while holding a row-level
// lock on the vehicle record, keeping the no-overlap invariant under
// concurrent callers. Unknown vehicles cause a cerr.NotFound error.
func (avail *UseCase) BlockVehicle(
	ctx context.Context,
	vid uuid.UUID, period model.DateRange, reason string,
) (bp *model.BlockedPeriod, err error) {
	today := avail.today()
	if reason = strings.TrimSpace(reason); reason == "" {
		return nil, cerr.BadRequest(
			fmt.Errorf("blocking reason is required"),
		)
	}
	if err := period.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	if !period.Start.After(today) || !period.End.After(today) {
		return nil, cerr.BadRequest(fmt.Errorf(
			"blocked period must start and end after %s",
			today.Format(model.DateLayout),
		))
	}
	err = avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(
				ctx, func(ctx context.Context, tx repo.Tx) error {
					bp, err = avail.block(ctx, tx, vid, period, reason)
					return err
				},
			)
		},
	)
	if err != nil {
		return nil, err
	}
	log.Info(
		ctx, "vehicle blocked",
		slog.String("vehicle", vid.String()),
		slog.String("block", bp.ID.String()),
	)
	return bp, nil
}

func (avail *UseCase) block(
	ctx context.Context, tx repo.Tx,
	vid uuid.UUID, period model.DateRange, reason string,
) (*model.BlockedPeriod, error) {
	vq := avail.vehiclesrp.Tx(tx)
	if _, err := vq.LockByID(ctx, vid); err != nil {
		return nil, fmt.Errorf("locking vehicle: %w", err)
	}
	blq := avail.blocksrp.Tx(tx)
	blocks, err := blq.FindOverlapping(
		ctx, vid, period.Start, period.End,
	)
	if err != nil {
		return nil, fmt.Errorf("finding overlapping blocks: %w", err)
	}
	if len(blocks) > 0 {
		return nil, cerr.Conflict(fmt.Errorf(
			"vehicle is already blocked for the selected period",
		))
	}
	bq := avail.bookingsrp.Tx(tx)
	bookings, err := bq.FindActiveByVehicle(ctx, vid)
	if err != nil {
		return nil, fmt.Errorf("finding active bookings: %w", err)
	}
	for i := range bookings {
		if bookings[i].Range().Overlaps(period) {
			return nil, cerr.Conflict(fmt.Errorf(
				"vehicle has bookings during the selected period",
			))
		}
	}
	bp := &model.BlockedPeriod{
		ID:          uuid.New(),
		VehicleID:   vid,
		StartDate:   period.Start,
		EndDate:     period.End,
		Reason:      reason,
		CreatedDate: avail.today(),
	}
	if err := blq.Create(ctx, bp); err != nil {
		return nil, fmt.Errorf("creating blocked period: %w", err)
	}
	return bp, nil
}

// UnblockVehicle use case removes all blocked periods of the vid
// vehicle unconditionally, returning the number of removed records.
// Unblocking a vehicle with no blocked periods is not an error, as
// the desired final state is already in place.
func (avail *UseCase) UnblockVehicle(
	ctx context.Context, vid uuid.UUID,
) (count int64, err error) {
	err = avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			blq := avail.blocksrp.Conn(c)
			count, err = blq.DeleteByVehicle(ctx, vid)
			return err
		},
	)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UnblockPeriod use case removes exactly one blocked period by its
// identifier. Removing an absent (e.g., already removed) period is
// not an error, as the desired final state is already in place.
func (avail *UseCase) UnblockPeriod(
	ctx context.Context, bid uuid.UUID,
) error {
	return avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			blq := avail.blocksrp.Conn(c)
			_, err := blq.DeleteByID(ctx, bid)
			return err
		},
	)
}

// VehiclesWithAvailability use case projects the availability of the
// whole fleet. For each vehicle, the earliest active booking (if any)
// is reported as the current occupant and the vehicle is projected to
// be free again one day after its return date. Without an active
// booking, the earliest unexpired blocked period postpones the next
// available date to one day after its end date. A vehicle with no
// active claim is available today.
func (avail *UseCase) VehiclesWithAvailability(
	ctx context.Context,
) (out []model.VehicleAvailability, err error) {
	err = avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			out, err = avail.projectFleet(ctx, c)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (avail *UseCase) projectFleet(
	ctx context.Context, c repo.Conn,
) ([]model.VehicleAvailability, error) {
	vq := avail.vehiclesrp.Conn(c)
	vehicles, err := vq.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	today := avail.today()
	bq := avail.bookingsrp.Conn(c)
	blq := avail.blocksrp.Conn(c)
	out := make([]model.VehicleAvailability, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		va := model.VehicleAvailability{
			ID:           v.ID,
			Make:         v.Make,
			Model:        v.Model,
			Year:         v.Year,
			LicensePlate: v.LicensePlate,
			Status:       v.Status,
		}
		bookings, err := bq.FindActiveByVehicle(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("finding active bookings: %w", err)
		}
		switch {
		case len(bookings) > 0:
			cur := &bookings[0] // earliest pickup date
			va.CurrentBooking = &model.CurrentBooking{
				Customer:  cur.CustomerName,
				StartDate: cur.PickupDate,
				EndDate:   cur.ReturnDate,
			}
			va.NextAvailable = model.AddDays(cur.ReturnDate, 1)
		default:
			blocks, err := blq.FindByVehicle(ctx, v.ID)
			if err != nil {
				return nil, fmt.Errorf("finding blocks: %w", err)
			}
			va.NextAvailable = today
			for j := range blocks {
				if blocks[j].EndDate.After(today) {
					// earliest unexpired block wins
					va.NextAvailable = model.AddDays(
						blocks[j].EndDate, 1,
					)
					break
				}
			}
		}
		out = append(out, va)
	}
	return out, nil
}

// ActiveBlockedPeriods use case lists all unexpired blocked periods,
// ordered by their start date, pairing each one with a description of
// its vehicle. Periods whose vehicle record cannot be resolved are
// still listed, with an empty description.
func (avail *UseCase) ActiveBlockedPeriods(
	ctx context.Context,
) (out []model.BlockedPeriodInfo, err error) {
	err = avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			out, err = avail.activeBlocks(ctx, c)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (avail *UseCase) activeBlocks(
	ctx context.Context, c repo.Conn,
) ([]model.BlockedPeriodInfo, error) {
	blq := avail.blocksrp.Conn(c)
	blocks, err := blq.FindActive(ctx, avail.today())
	if err != nil {
		return nil, fmt.Errorf("finding active blocks: %w", err)
	}
	vq := avail.vehiclesrp.Conn(c)
	out := make([]model.BlockedPeriodInfo, 0, len(blocks))
	for i := range blocks {
		info := model.BlockedPeriodInfo{BlockedPeriod: blocks[i]}
		v, err := vq.FindByID(ctx, blocks[i].VehicleID)
		switch {
		case err == nil:
			info.VehicleDescription = v.Description()
		case cerr.IsNotFound(err):
			// vehicle was off-boarded; keep the period listed
		default:
			return nil, fmt.Errorf("finding vehicle: %w", err)
		}
		out = append(out, info)
	}
	return out, nil
}

// Stats use case aggregates the fleet-wide availability counters.
// The available, booked, and maintenance counters partition the
// catalog by the categorical vehicle status, while the blocked
// counter reports the number of currently active blocked period
// records. See model.AvailabilityStats about the non-sum property of
// these counters.
func (avail *UseCase) Stats(
	ctx context.Context,
) (stats *model.AvailabilityStats, err error) {
	err = avail.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			stats, err = avail.stats(ctx, c)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (avail *UseCase) stats(
	ctx context.Context, c repo.Conn,
) (*model.AvailabilityStats, error) {
	vq := avail.vehiclesrp.Conn(c)
	vehicles, err := vq.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	stats := &model.AvailabilityStats{
		Total: int64(len(vehicles)),
	}
	for i := range vehicles {
		switch vehicles[i].Status {
		case model.VehicleStatusAvailable:
			stats.Available++
		case model.VehicleStatusRented:
			stats.Booked++
		case model.VehicleStatusMaintenance:
			stats.Maintenance++
		}
	}
	blq := avail.blocksrp.Conn(c)
	blocks, err := blq.FindActive(ctx, avail.today())
	if err != nil {
		return nil, fmt.Errorf("finding active blocks: %w", err)
	}
	stats.Blocked = int64(len(blocks))
	return stats, nil
}
