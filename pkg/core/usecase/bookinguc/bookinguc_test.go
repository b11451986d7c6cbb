// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookinguc_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/internal/test/fakerepo"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
	"github.com/momeni/rental-fleet/pkg/core/usecase/bookinguc"
	"github.com/stretchr/testify/suite"
)

func date(s string) time.Time {
	t, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

type BookingsTestSuite struct {
	suite.Suite

	Ctx      context.Context
	Store    *fakerepo.Store
	Pool     repo.Pool
	Bookings *bookinguc.UseCase
}

func TestBookingsTestSuite(t *testing.T) {
	suite.Run(t, &BookingsTestSuite{})
}

func (bts *BookingsTestSuite) SetupTest() {
	bts.Ctx = context.Background()
	bts.Store, bts.Pool = fakerepo.New()
	bts.Bookings = bookinguc.New(bts.Pool, fakerepo.NewBookings())
}

func (bts *BookingsTestSuite) input() bookinguc.CreateBookingInput {
	return bookinguc.CreateBookingInput{
		VehicleID:    uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "  Jane Roe ",
		Period: model.DateRange{
			Start: date("2026-06-10"), End: date("2026-06-15"),
		},
		PickupLocation: "downtown",
		ReturnLocation: "airport",
		TotalCostCents: 45000,
	}
}

func (bts *BookingsTestSuite) TestCreate() {
	in := bts.input()
	b, err := bts.Bookings.Create(bts.Ctx, in)
	bts.Require().NoError(err)
	bts.NotEqual(uuid.Nil, b.ID)
	bts.Equal(in.VehicleID, b.VehicleID)
	bts.Equal("Jane Roe", b.CustomerName, "names are trimmed")
	bts.Equal(
		model.BookingStatusActive, b.Status,
		"status defaults to active",
	)

	got, err := bts.Bookings.Get(bts.Ctx, b.ID)
	bts.NoError(err)
	bts.Equal(b.ID, got.ID)
}

func (bts *BookingsTestSuite) TestCreateValidation() {
	in := bts.input()
	in.VehicleID = uuid.Nil
	_, err := bts.Bookings.Create(bts.Ctx, in)
	var ce *cerr.Error
	bts.ErrorAs(err, &ce)
	bts.Equal(400, ce.HTTPStatusCode)

	in = bts.input()
	in.CustomerID = uuid.Nil
	_, err = bts.Bookings.Create(bts.Ctx, in)
	bts.ErrorAs(err, &ce)
	bts.Equal(400, ce.HTTPStatusCode)

	in = bts.input()
	in.Period.Start, in.Period.End = in.Period.End, in.Period.Start
	_, err = bts.Bookings.Create(bts.Ctx, in)
	bts.ErrorAs(err, &ce)
	bts.Equal(400, ce.HTTPStatusCode)
}

func (bts *BookingsTestSuite) TestCreateDoesNotArbitrate() {
	in := bts.input()
	_, err := bts.Bookings.Create(bts.Ctx, in)
	bts.Require().NoError(err)

	// the reservation flow is trusted; an overlapping window for the
	// same vehicle is accepted without consulting the calendar
	in2 := bts.input()
	in2.VehicleID = in.VehicleID
	_, err = bts.Bookings.Create(bts.Ctx, in2)
	bts.NoError(err)
}

func (bts *BookingsTestSuite) TestListings() {
	in := bts.input()
	b1, err := bts.Bookings.Create(bts.Ctx, in)
	bts.Require().NoError(err)
	in2 := bts.input()
	in2.VehicleID = in.VehicleID
	in2.Period = model.DateRange{
		Start: date("2026-05-01"), End: date("2026-05-05"),
	}
	b2, err := bts.Bookings.Create(bts.Ctx, in2)
	bts.Require().NoError(err)

	all, err := bts.Bookings.All(bts.Ctx)
	bts.Require().NoError(err)
	bts.Require().Len(all, 2)
	bts.Equal(
		b2.ID, all[0].ID,
		"listings are ordered by the pickup date",
	)
	bts.Equal(b1.ID, all[1].ID)

	byv, err := bts.Bookings.ByVehicle(bts.Ctx, in.VehicleID)
	bts.NoError(err)
	bts.Len(byv, 2)

	byc, err := bts.Bookings.ByCustomer(bts.Ctx, in2.CustomerID)
	bts.NoError(err)
	bts.Require().Len(byc, 1)
	bts.Equal(b2.ID, byc[0].ID)
}

func (bts *BookingsTestSuite) TestUpdate() {
	b, err := bts.Bookings.Create(bts.Ctx, bts.input())
	bts.Require().NoError(err)

	b.ReturnLocation = "harbor"
	b.Status = model.BookingStatusCompleted
	updated, err := bts.Bookings.Update(bts.Ctx, b)
	bts.Require().NoError(err)
	bts.Equal("harbor", updated.ReturnLocation)
	bts.Equal(model.BookingStatusCompleted, updated.Status)

	b.ID = uuid.New()
	_, err = bts.Bookings.Update(bts.Ctx, b)
	bts.True(cerr.IsNotFound(err), "expected a not-found error")
}

func (bts *BookingsTestSuite) TestCancel() {
	b, err := bts.Bookings.Create(bts.Ctx, bts.input())
	bts.Require().NoError(err)

	cancelled, err := bts.Bookings.Cancel(bts.Ctx, b.ID)
	bts.Require().NoError(err)
	bts.Equal(model.BookingStatusCancelled, cancelled.Status)

	_, err = bts.Bookings.Cancel(bts.Ctx, b.ID)
	var ce *cerr.Error
	bts.ErrorAs(err, &ce)
	bts.Equal(
		400, ce.HTTPStatusCode,
		"double cancellation must be rejected",
	)
}

func (bts *BookingsTestSuite) TestDelete() {
	b, err := bts.Bookings.Create(bts.Ctx, bts.input())
	bts.Require().NoError(err)

	bts.NoError(bts.Bookings.Delete(bts.Ctx, b.ID))

	_, err = bts.Bookings.Get(bts.Ctx, b.ID)
	bts.True(cerr.IsNotFound(err), "expected a not-found error")

	err = bts.Bookings.Delete(bts.Ctx, b.ID)
	bts.True(cerr.IsNotFound(err), "expected a not-found error")
}
