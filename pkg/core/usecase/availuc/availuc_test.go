// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package availuc_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/internal/test/fakerepo"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
	"github.com/momeni/rental-fleet/pkg/core/usecase/availuc"
	"github.com/stretchr/testify/suite"
)

// testToday is the frozen calendar date which is injected via the
// WithClock option, so the date-sensitive policies stay deterministic.
const testToday = "2026-06-01"

func date(s string) time.Time {
	t, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func drange(start, end string) model.DateRange {
	return model.DateRange{Start: date(start), End: date(end)}
}

type AvailabilityTestSuite struct {
	suite.Suite

	Ctx   context.Context
	Store *fakerepo.Store
	Pool  repo.Pool
	Avail *availuc.UseCase
}

func TestAvailabilityTestSuite(t *testing.T) {
	suite.Run(t, &AvailabilityTestSuite{})
}

func (ats *AvailabilityTestSuite) SetupTest() {
	ats.Ctx = context.Background()
	ats.Store, ats.Pool = fakerepo.New()
	avail, err := availuc.New(
		ats.Pool,
		fakerepo.NewVehicles(),
		fakerepo.NewBookings(),
		fakerepo.NewBlockedPeriods(),
		availuc.WithClock(func() time.Time {
			return date(testToday)
		}),
	)
	ats.Require().NoError(err, "cannot instantiate use case")
	ats.Avail = avail
}

func (ats *AvailabilityTestSuite) seedVehicle(
	status model.VehicleStatus,
) uuid.UUID {
	vid := uuid.New()
	ats.Store.AddVehicle(model.Vehicle{
		ID:           vid,
		LicensePlate: "FLT-" + vid.String()[:8],
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2023,
		Status:       status,
	})
	return vid
}

func (ats *AvailabilityTestSuite) seedBooking(
	vid uuid.UUID, start, end string, status model.BookingStatus,
) uuid.UUID {
	bid := uuid.New()
	ats.Store.AddBooking(model.Booking{
		ID:           bid,
		VehicleID:    vid,
		CustomerID:   uuid.New(),
		CustomerName: "Jane Roe",
		PickupDate:   date(start),
		ReturnDate:   date(end),
		Status:       status,
	})
	return bid
}

func (ats *AvailabilityTestSuite) seedBlock(
	vid uuid.UUID, start, end string,
) uuid.UUID {
	pid := uuid.New()
	ats.Store.AddBlockedPeriod(model.BlockedPeriod{
		ID:          pid,
		VehicleID:   vid,
		StartDate:   date(start),
		EndDate:     date(end),
		Reason:      "inspection",
		CreatedDate: date(testToday),
	})
	return pid
}

func (ats *AvailabilityTestSuite) TestAvailableWithNoClaims() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-10", "2026-06-15"),
	)
	ats.NoError(err)
	ats.True(free)
}

func (ats *AvailabilityTestSuite) TestMaintenanceStatusVetoes() {
	vid := ats.seedVehicle(model.VehicleStatusMaintenance)
	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-10", "2026-06-15"),
	)
	ats.NoError(err)
	ats.False(free, "maintenance vetoes regardless of the dates")
}

func (ats *AvailabilityTestSuite) TestUnknownVehicle() {
	_, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, uuid.New(), drange("2026-06-10", "2026-06-15"),
	)
	ats.Error(err)
	ats.True(cerr.IsNotFound(err), "expected a not-found error")
}

func (ats *AvailabilityTestSuite) TestInvertedRange() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	_, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-15", "2026-06-10"),
	)
	var ce *cerr.Error
	ats.ErrorAs(err, &ce)
	ats.Equal(400, ce.HTTPStatusCode)
}

func (ats *AvailabilityTestSuite) TestBookingOverlapBlocks() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBooking(
		vid, "2026-06-10", "2026-06-15", model.BookingStatusActive,
	)
	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-12", "2026-06-20"),
	)
	ats.NoError(err)
	ats.False(free)
}

func (ats *AvailabilityTestSuite) TestSameDayTurnover() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBooking(
		vid, "2026-06-10", "2026-06-15", model.BookingStatusActive,
	)
	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-15", "2026-06-20"),
	)
	ats.NoError(err)
	ats.True(free, "a booking touching the boundary date is no claim")
}

func (ats *AvailabilityTestSuite) TestCancelledBookingIgnored() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBooking(
		vid, "2026-06-10", "2026-06-15", model.BookingStatusCancelled,
	)
	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-12", "2026-06-20"),
	)
	ats.NoError(err)
	ats.True(free, "a cancelled booking frees the calendar")
}

func (ats *AvailabilityTestSuite) TestBlockTouchingBoundary() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBlock(vid, "2026-06-10", "2026-06-15")
	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-15", "2026-06-20"),
	)
	ats.NoError(err)
	ats.False(
		free,
		"blocked periods claim their boundary dates inclusively",
	)
}

func (ats *AvailabilityTestSuite) TestBlockVehicle() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	bp, err := ats.Avail.BlockVehicle(
		ats.Ctx, vid, drange("2026-06-10", "2026-06-15"), "inspection",
	)
	ats.Require().NoError(err)
	ats.Equal(vid, bp.VehicleID)
	ats.Equal("inspection", bp.Reason)
	ats.True(bp.CreatedDate.Equal(date(testToday)))

	free, err := ats.Avail.IsVehicleAvailable(
		ats.Ctx, vid, drange("2026-06-12", "2026-06-13"),
	)
	ats.NoError(err)
	ats.False(free)
}

func (ats *AvailabilityTestSuite) TestBlockValidation() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	for _, tc := range []struct {
		name   string
		period model.DateRange
		reason string
	}{
		{
			name:   "blank reason",
			period: drange("2026-06-10", "2026-06-15"),
			reason: "   ",
		},
		{
			name:   "inverted range",
			period: drange("2026-06-15", "2026-06-10"),
			reason: "inspection",
		},
		{
			name:   "back-dated",
			period: drange("2026-05-10", "2026-05-15"),
			reason: "inspection",
		},
		{
			name:   "starting today",
			period: drange(testToday, "2026-06-15"),
			reason: "inspection",
		},
	} {
		ats.Run(tc.name, func() {
			_, err := ats.Avail.BlockVehicle(
				ats.Ctx, vid, tc.period, tc.reason,
			)
			var ce *cerr.Error
			ats.ErrorAs(err, &ce)
			ats.Equal(400, ce.HTTPStatusCode)
		})
	}
}

func (ats *AvailabilityTestSuite) TestBlockUnknownVehicle() {
	_, err := ats.Avail.BlockVehicle(
		ats.Ctx, uuid.New(),
		drange("2026-06-10", "2026-06-15"), "inspection",
	)
	ats.Error(err)
	ats.True(cerr.IsNotFound(err), "expected a not-found error")
}

func (ats *AvailabilityTestSuite) TestBlockConflictWithBlock() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBlock(vid, "2026-06-10", "2026-06-15")

	_, err := ats.Avail.BlockVehicle(
		ats.Ctx, vid, drange("2026-06-14", "2026-06-20"), "repaint",
	)
	ats.True(cerr.IsConflict(err), "expected a conflict error")

	// touching the boundary date conflicts too (inclusive boundaries)
	_, err = ats.Avail.BlockVehicle(
		ats.Ctx, vid, drange("2026-06-15", "2026-06-20"), "repaint",
	)
	ats.True(cerr.IsConflict(err), "expected a conflict error")

	blocks, err := ats.Avail.ActiveBlockedPeriods(ats.Ctx)
	ats.NoError(err)
	ats.Len(blocks, 1, "the rejected block must not be recorded")
}

func (ats *AvailabilityTestSuite) TestBlockConflictWithBooking() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBooking(
		vid, "2026-06-10", "2026-06-15", model.BookingStatusActive,
	)
	_, err := ats.Avail.BlockVehicle(
		ats.Ctx, vid, drange("2026-06-12", "2026-06-20"), "inspection",
	)
	ats.True(cerr.IsConflict(err), "expected a conflict error")
}

func (ats *AvailabilityTestSuite) TestBlockAfterCancelledBooking() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBooking(
		vid, "2026-06-10", "2026-06-15", model.BookingStatusCancelled,
	)
	_, err := ats.Avail.BlockVehicle(
		ats.Ctx, vid, drange("2026-06-12", "2026-06-20"), "inspection",
	)
	ats.NoError(err, "cancelled bookings do not conflict")
}

func (ats *AvailabilityTestSuite) TestUnblockVehicle() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBlock(vid, "2026-06-10", "2026-06-15")
	ats.seedBlock(vid, "2026-07-10", "2026-07-15")

	count, err := ats.Avail.UnblockVehicle(ats.Ctx, vid)
	ats.NoError(err)
	ats.Equal(int64(2), count)

	count, err = ats.Avail.UnblockVehicle(ats.Ctx, vid)
	ats.NoError(err, "unblocking an unblocked vehicle is no error")
	ats.Equal(int64(0), count)
}

func (ats *AvailabilityTestSuite) TestUnblockPeriod() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	pid := ats.seedBlock(vid, "2026-06-10", "2026-06-15")

	ats.NoError(ats.Avail.UnblockPeriod(ats.Ctx, pid))
	ats.NoError(
		ats.Avail.UnblockPeriod(ats.Ctx, pid),
		"removing an absent period is no error",
	)
}

func (ats *AvailabilityTestSuite) TestFleetProjection() {
	booked := ats.seedVehicle(model.VehicleStatusRented)
	ats.seedBooking(
		booked, "2026-06-10", "2026-06-15", model.BookingStatusActive,
	)
	blocked := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBlock(blocked, "2026-06-20", "2026-06-25")
	expired := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBlock(expired, "2026-05-01", "2026-05-05")
	free := ats.seedVehicle(model.VehicleStatusAvailable)

	out, err := ats.Avail.VehiclesWithAvailability(ats.Ctx)
	ats.Require().NoError(err)
	ats.Require().Len(out, 4)

	byID := make(map[uuid.UUID]model.VehicleAvailability, len(out))
	for _, va := range out {
		byID[va.ID] = va
	}

	va := byID[booked]
	ats.Require().NotNil(va.CurrentBooking)
	ats.Equal("Jane Roe", va.CurrentBooking.Customer)
	ats.Equal(
		"2026-06-16", va.NextAvailable.Format(model.DateLayout),
		"one day after the return date",
	)

	va = byID[blocked]
	ats.Nil(va.CurrentBooking)
	ats.Equal(
		"2026-06-26", va.NextAvailable.Format(model.DateLayout),
		"one day after the blocked period end date",
	)

	va = byID[expired]
	ats.Equal(
		testToday, va.NextAvailable.Format(model.DateLayout),
		"an expired block does not postpone the availability",
	)

	va = byID[free]
	ats.Nil(va.CurrentBooking)
	ats.Equal(testToday, va.NextAvailable.Format(model.DateLayout))
}

func (ats *AvailabilityTestSuite) TestActiveBlockedPeriods() {
	vid := ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedBlock(vid, "2026-06-10", "2026-06-15")
	ats.seedBlock(vid, "2026-05-01", "2026-05-05") // expired
	orphan := uuid.New()                           // off-boarded vehicle
	ats.seedBlock(orphan, "2026-06-20", "2026-06-25")

	out, err := ats.Avail.ActiveBlockedPeriods(ats.Ctx)
	ats.Require().NoError(err)
	ats.Require().Len(out, 2, "expired periods are filtered out")

	ats.Equal(vid, out[0].VehicleID)
	ats.Equal("2023 Toyota Corolla", out[0].VehicleDescription)
	ats.Equal(orphan, out[1].VehicleID)
	ats.Empty(
		out[1].VehicleDescription,
		"periods of unresolvable vehicles are still listed",
	)
}

func (ats *AvailabilityTestSuite) TestStats() {
	ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedVehicle(model.VehicleStatusAvailable)
	ats.seedVehicle(model.VehicleStatusRented)
	ats.seedVehicle(model.VehicleStatusMaintenance)
	blocked := ats.seedVehicle(model.VehicleStatusAvailable)
	// two active periods on a single vehicle count twice
	ats.seedBlock(blocked, "2026-06-10", "2026-06-15")
	ats.seedBlock(blocked, "2026-07-10", "2026-07-15")
	ats.seedBlock(blocked, "2026-05-01", "2026-05-05") // expired

	stats, err := ats.Avail.Stats(ats.Ctx)
	ats.Require().NoError(err)
	ats.Equal(int64(5), stats.Total)
	ats.Equal(int64(3), stats.Available)
	ats.Equal(int64(1), stats.Booked)
	ats.Equal(int64(1), stats.Maintenance)
	ats.Equal(
		int64(2), stats.Blocked,
		"blocked counts active period records, not vehicles",
	)
}
