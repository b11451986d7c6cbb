// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookingsrs realizes the bookings resource, allowing the
// booking records manipulation REST APIs to be accepted and delegated
// to the bookings use cases respectively.
package bookingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/rental-fleet/pkg/core/usecase/bookinguc"
)

type resource struct {
	bookings *bookinguc.UseCase
}

// Register instantiates a resource adapting the bookings use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/fleet/v1/bookings
//     in order to create a new booking,
//  2. GET request to /api/fleet/v1/bookings
//     in order to list all bookings,
//  3. GET request to /api/fleet/v1/bookings/:bid
//     in order to resolve one booking,
//  4. PUT request to /api/fleet/v1/bookings/:bid
//     in order to overwrite one booking record,
//  5. POST request to /api/fleet/v1/bookings/:bid/cancellation
//     in order to cancel one booking,
//  6. DELETE request to /api/fleet/v1/bookings/:bid
//     in order to remove one booking record permanently,
//  7. GET request to /api/fleet/v1/vehicles/:vid/bookings
//     in order to list the bookings of one vehicle,
//  8. GET request to /api/fleet/v1/customers/:cid/bookings
//     in order to list the bookings of one customer.
func Register(r *gin.RouterGroup, bookings *bookinguc.UseCase) {
	rs := &resource{bookings: bookings}
	r.POST("bookings", rs.CreateBooking)
	r.GET("bookings", rs.ListBookings)
	r.GET("bookings/:bid", rs.GetBooking)
	r.PUT("bookings/:bid", rs.UpdateBooking)
	r.POST("bookings/:bid/cancellation", rs.CancelBooking)
	r.DELETE("bookings/:bid", rs.DeleteBooking)
	r.GET("vehicles/:vid/bookings", rs.ListVehicleBookings)
	r.GET("customers/:cid/bookings", rs.ListCustomerBookings)
}

func (rs *resource) CreateBooking(c *gin.Context) {
	in := rs.DserCreateBookingReq(c)
	if in == nil {
		return
	}
	b, err := rs.bookings.Create(c, *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerBooking(b))
}

func (rs *resource) ListBookings(c *gin.Context) {
	bs, err := rs.bookings.All(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBookings(bs))
}

func (rs *resource) GetBooking(c *gin.Context) {
	bid := rs.DserBookingID(c)
	if bid == nil {
		return
	}
	b, err := rs.bookings.Get(c, *bid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBooking(b))
}

func (rs *resource) UpdateBooking(c *gin.Context) {
	b := rs.DserUpdateBookingReq(c)
	if b == nil {
		return
	}
	updated, err := rs.bookings.Update(c, b)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBooking(updated))
}

func (rs *resource) CancelBooking(c *gin.Context) {
	bid := rs.DserBookingID(c)
	if bid == nil {
		return
	}
	b, err := rs.bookings.Cancel(c, *bid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBooking(b))
}

func (rs *resource) DeleteBooking(c *gin.Context) {
	bid := rs.DserBookingID(c)
	if bid == nil {
		return
	}
	if err := rs.bookings.Delete(c, *bid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) ListVehicleBookings(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	bs, err := rs.bookings.ByVehicle(c, *vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBookings(bs))
}

func (rs *resource) ListCustomerBookings(c *gin.Context) {
	cid := rs.DserCustomerID(c)
	if cid == nil {
		return
	}
	bs, err := rs.bookings.ByCustomer(c, *cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBookings(bs))
}
