// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/usecase/bookinguc"
)

type rawBookingReq struct {
	VehicleID  string `json:"vehicleId" binding:"required,uuid"`
	CustomerID string `json:"customerId" binding:"required,uuid"`

	CustomerName string `json:"customerName" binding:"omitempty"`

	PickupDate string `json:"pickupDate" binding:"required,datetime=2006-01-02"`
	ReturnDate string `json:"returnDate" binding:"required,datetime=2006-01-02"`

	PickupLocation string `json:"pickupLocation" binding:"omitempty"`
	ReturnLocation string `json:"returnLocation" binding:"omitempty"`

	TotalCostCents int64 `json:"totalCostCents" binding:"omitempty,gte=0"`

	Status string `json:"status" binding:"omitempty,oneof=pending active cancelled completed"`
}

func (raw *rawBookingReq) dser(
	c *gin.Context,
) *bookinguc.CreateBookingInput {
	in := &bookinguc.CreateBookingInput{
		CustomerName:   raw.CustomerName,
		PickupLocation: raw.PickupLocation,
		ReturnLocation: raw.ReturnLocation,
		TotalCostCents: raw.TotalCostCents,
	}
	var errs map[string][]string
	var err error
	in.VehicleID, err = uuid.Parse(raw.VehicleID)
	serdser.Assert(&errs, err == nil, "vehicleId", "Expected a UUID.")
	in.CustomerID, err = uuid.Parse(raw.CustomerID)
	serdser.Assert(&errs, err == nil, "customerId", "Expected a UUID.")
	in.Period.Start, err = model.ParseDate(raw.PickupDate)
	serdser.Assert(&errs, err == nil, "pickupDate", "Expected a yyyy-mm-dd date.")
	in.Period.End, err = model.ParseDate(raw.ReturnDate)
	serdser.Assert(&errs, err == nil, "returnDate", "Expected a yyyy-mm-dd date.")
	if raw.Status != "" {
		in.Status, err = model.ParseBookingStatus(raw.Status)
		serdser.Assert(&errs, err == nil, "status", "Unknown status.")
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return in
}

func (rs *resource) DserCreateBookingReq(
	c *gin.Context,
) *bookinguc.CreateBookingInput {
	raw := &rawBookingReq{}
	if ok := serdser.Bind(c, raw); !ok {
		return nil
	}
	return raw.dser(c)
}

func (rs *resource) DserUpdateBookingReq(
	c *gin.Context,
) *model.Booking {
	bid := rs.DserBookingID(c)
	if bid == nil {
		return nil
	}
	raw := &rawBookingReq{}
	if ok := serdser.Bind(c, raw); !ok {
		return nil
	}
	in := raw.dser(c)
	if in == nil {
		return nil
	}
	status := in.Status
	if status == model.BookingStatusInvalid {
		status = model.BookingStatusActive
	}
	return &model.Booking{
		ID:             *bid,
		VehicleID:      in.VehicleID,
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		PickupDate:     in.Period.Start,
		ReturnDate:     in.Period.End,
		PickupLocation: in.PickupLocation,
		ReturnLocation: in.ReturnLocation,
		TotalCostCents: in.TotalCostCents,
		Status:         status,
	}
}

type rawBookingIDReq struct {
	ID string `uri:"bid" binding:"required,uuid"`
}

func (rs *resource) DserBookingID(c *gin.Context) *uuid.UUID {
	raw := &rawBookingIDReq{}
	if ok := serdser.BindURI(c, raw); !ok {
		return nil
	}
	bid, err := uuid.Parse(raw.ID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "bid", "Path param bid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &bid
}

type rawVehicleIDReq struct {
	ID string `uri:"vid" binding:"required,uuid"`
}

func (rs *resource) DserVehicleID(c *gin.Context) *uuid.UUID {
	raw := &rawVehicleIDReq{}
	if ok := serdser.BindURI(c, raw); !ok {
		return nil
	}
	vid, err := uuid.Parse(raw.ID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "vid", "Path param vid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &vid
}

type rawCustomerIDReq struct {
	ID string `uri:"cid" binding:"required,uuid"`
}

func (rs *resource) DserCustomerID(c *gin.Context) *uuid.UUID {
	raw := &rawCustomerIDReq{}
	if ok := serdser.BindURI(c, raw); !ok {
		return nil
	}
	cid, err := uuid.Parse(raw.ID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &cid
}

type bookingResp struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicleId"`
	CustomerID uuid.UUID `json:"customerId"`

	CustomerName string `json:"customerName,omitempty"`

	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`

	PickupLocation string `json:"pickupLocation,omitempty"`
	ReturnLocation string `json:"returnLocation,omitempty"`

	TotalCostCents int64 `json:"totalCostCents"`

	Status string `json:"status"`
}

// SerBooking serializes one booking record, formatting its dates with
// the model.DateLayout format.
func SerBooking(b *model.Booking) bookingResp {
	return bookingResp{
		ID:             b.ID,
		VehicleID:      b.VehicleID,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		PickupDate:     b.PickupDate.Format(model.DateLayout),
		ReturnDate:     b.ReturnDate.Format(model.DateLayout),
		PickupLocation: b.PickupLocation,
		ReturnLocation: b.ReturnLocation,
		TotalCostCents: b.TotalCostCents,
		Status:         b.Status.String(),
	}
}

// SerBookings serializes a bookings listing.
func SerBookings(bs []model.Booking) []bookingResp {
	out := make([]bookingResp, 0, len(bs))
	for i := range bs {
		out = append(out, SerBooking(&bs[i]))
	}
	return out
}
