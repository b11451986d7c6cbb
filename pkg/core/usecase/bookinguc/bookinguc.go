// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookinguc contains the bookings UseCase which manages the
// rental booking records: creation, updates, cancellation, deletion,
// and the customer/vehicle listings.
//
// Bookings arrive from an upstream reservation flow which is trusted
// to have consulted the availability engine beforehand; the Create
// use case therefore does not re-check the requested window against
// the existing bookings and blocked periods. This trust boundary
// mirrors the behavior of the system it replaces.
package bookinguc

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// UseCase represents the bookings use case. It holds a database
// connection pool and the bookings repository instance (to be guided
// with the DB pool).
type UseCase struct {
	pool       repo.Pool
	bookingsrp repo.Bookings
}

// New instantiates a bookings use case.
func New(p repo.Pool, b repo.Bookings) *UseCase {
	return &UseCase{pool: p, bookingsrp: b}
}

// CreateBookingInput carries the creation parameters of one booking.
type CreateBookingInput struct {
	VehicleID  uuid.UUID
	CustomerID uuid.UUID

	CustomerName string

	Period model.DateRange

	PickupLocation string
	ReturnLocation string

	TotalCostCents int64

	// Status defaults to active when left unset.
	Status model.BookingStatus
}

// Create use case persists a new booking. The booking window must be
// a well-formed date range; its status defaults to active when left
// unset, so a freshly created booking claims the vehicle calendar
// immediately.
func (bkng *UseCase) Create(
	ctx context.Context, in CreateBookingInput,
) (b *model.Booking, err error) {
	if in.VehicleID == uuid.Nil {
		return nil, cerr.BadRequest(
			fmt.Errorf("vehicle id is required"),
		)
	}
	if in.CustomerID == uuid.Nil {
		return nil, cerr.BadRequest(
			fmt.Errorf("customer id is required"),
		)
	}
	if err := in.Period.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	status := in.Status
	if status == model.BookingStatusInvalid {
		status = model.BookingStatusActive
	}
	if err := status.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	b = &model.Booking{
		ID:             uuid.New(),
		VehicleID:      in.VehicleID,
		CustomerID:     in.CustomerID,
		CustomerName:   strings.TrimSpace(in.CustomerName),
		PickupDate:     in.Period.Start,
		ReturnDate:     in.Period.End,
		PickupLocation: strings.TrimSpace(in.PickupLocation),
		ReturnLocation: strings.TrimSpace(in.ReturnLocation),
		TotalCostCents: in.TotalCostCents,
		Status:         status,
	}
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return bkng.bookingsrp.Conn(c).Create(ctx, b)
		},
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Get use case resolves one booking by its identifier.
func (bkng *UseCase) Get(
	ctx context.Context, bid uuid.UUID,
) (b *model.Booking, err error) {
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			b, err = bkng.bookingsrp.Conn(c).FindByID(ctx, bid)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// All use case lists all bookings.
func (bkng *UseCase) All(
	ctx context.Context,
) (bs []model.Booking, err error) {
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			bs, err = bkng.bookingsrp.Conn(c).FindAll(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// ByVehicle use case lists all bookings of one vehicle.
func (bkng *UseCase) ByVehicle(
	ctx context.Context, vid uuid.UUID,
) (bs []model.Booking, err error) {
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			bs, err = bkng.bookingsrp.Conn(c).FindByVehicle(ctx, vid)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// ByCustomer use case lists all bookings of one customer.
func (bkng *UseCase) ByCustomer(
	ctx context.Context, cid uuid.UUID,
) (bs []model.Booking, err error) {
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			bs, err = bkng.bookingsrp.Conn(c).FindByCustomer(ctx, cid)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// Update use case overwrites an existing booking record, returning a
// cerr.NotFound error if no such booking exists.
func (bkng *UseCase) Update(
	ctx context.Context, b *model.Booking,
) (updated *model.Booking, err error) {
	if err := b.Range().Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	if err := b.Status.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			updated, err = bkng.bookingsrp.Conn(c).Update(ctx, b)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel use case marks one booking as cancelled, freeing the claimed
// calendar window. Cancelling an already cancelled booking is
// rejected with a cerr.BadRequest error. The read and the write run
// in one transaction.
func (bkng *UseCase) Cancel(
	ctx context.Context, bid uuid.UUID,
) (b *model.Booking, err error) {
	err = bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(
				ctx, func(ctx context.Context, tx repo.Tx) error {
					b, err = bkng.cancel(ctx, tx, bid)
					return err
				},
			)
		},
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (bkng *UseCase) cancel(
	ctx context.Context, tx repo.Tx, bid uuid.UUID,
) (*model.Booking, error) {
	bq := bkng.bookingsrp.Tx(tx)
	b, err := bq.FindByID(ctx, bid)
	if err != nil {
		return nil, fmt.Errorf("finding booking: %w", err)
	}
	if b.Status == model.BookingStatusCancelled {
		return nil, cerr.BadRequest(
			fmt.Errorf("booking is already cancelled"),
		)
	}
	b.Status = model.BookingStatusCancelled
	b, err = bq.Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}
	return b, nil
}

// Delete use case removes one booking record permanently, returning a
// cerr.NotFound error if no such booking exists.
func (bkng *UseCase) Delete(ctx context.Context, bid uuid.UUID) error {
	return bkng.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			bq := bkng.bookingsrp.Conn(c)
			if _, err := bq.FindByID(ctx, bid); err != nil {
				return fmt.Errorf("finding booking: %w", err)
			}
			return bq.DeleteByID(ctx, bid)
		},
	)
}
