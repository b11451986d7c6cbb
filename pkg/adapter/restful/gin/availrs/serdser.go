// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package availrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/rental-fleet/pkg/core/model"
)

type rawCheckReq struct {
	VehicleID string `uri:"vid" binding:"required,uuid"`
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

type checkReq struct {
	VehicleID uuid.UUID
	Period    model.DateRange
}

func (rs *resource) DserCheckReq(c *gin.Context) *checkReq {
	raw := &rawCheckReq{}
	if ok := serdser.BindURI(c, raw); !ok {
		return nil
	}
	if ok := serdser.Bind(c, raw); !ok {
		return nil
	}
	val := &checkReq{}
	var errs map[string][]string
	var err error
	val.VehicleID, err = uuid.Parse(raw.VehicleID)
	serdser.Assert(&errs, err == nil, "vid", "Path param vid is not UUID.")
	val.Period.Start, err = model.ParseDate(raw.StartDate)
	serdser.Assert(&errs, err == nil, "startDate", "Expected a yyyy-mm-dd date.")
	val.Period.End, err = model.ParseDate(raw.EndDate)
	serdser.Assert(&errs, err == nil, "endDate", "Expected a yyyy-mm-dd date.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

type rawBlockReq struct {
	VehicleID string `json:"vehicleId" binding:"required,uuid"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required"`
}

type blockReq struct {
	VehicleID uuid.UUID
	Period    model.DateRange
	Reason    string
}

func (rs *resource) DserBlockReq(c *gin.Context) *blockReq {
	raw := &rawBlockReq{}
	if ok := serdser.Bind(c, raw); !ok {
		return nil
	}
	val := &blockReq{Reason: raw.Reason}
	var errs map[string][]string
	var err error
	val.VehicleID, err = uuid.Parse(raw.VehicleID)
	serdser.Assert(&errs, err == nil, "vehicleId", "Expected a UUID.")
	val.Period.Start, err = model.ParseDate(raw.StartDate)
	serdser.Assert(&errs, err == nil, "startDate", "Expected a yyyy-mm-dd date.")
	val.Period.End, err = model.ParseDate(raw.EndDate)
	serdser.Assert(&errs, err == nil, "endDate", "Expected a yyyy-mm-dd date.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

type rawIDReq struct {
	ID string `uri:"vid" binding:"required,uuid"`
}

func (rs *resource) DserVehicleID(c *gin.Context) *uuid.UUID {
	raw := &rawIDReq{}
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

type rawPeriodIDReq struct {
	ID string `uri:"pid" binding:"required,uuid"`
}

func (rs *resource) DserPeriodID(c *gin.Context) *uuid.UUID {
	raw := &rawPeriodIDReq{}
	if ok := serdser.BindURI(c, raw); !ok {
		return nil
	}
	pid, err := uuid.Parse(raw.ID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "pid", "Path param pid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &pid
}

type checkResp struct {
	Available bool `json:"available"`
}

type unblockResp struct {
	Removed int64 `json:"removed"`
}

type currentBookingResp struct {
	Customer  string `json:"customer"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type vehicleAvailabilityResp struct {
	ID           uuid.UUID `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"licensePlate"`
	Status       string    `json:"status"`

	CurrentBooking *currentBookingResp `json:"currentBooking,omitempty"`
	NextAvailable  string              `json:"nextAvailable"`
}

// SerFleetAvailability serializes the fleet availability projection,
// formatting all dates with the model.DateLayout format.
func SerFleetAvailability(
	vas []model.VehicleAvailability,
) []vehicleAvailabilityResp {
	out := make([]vehicleAvailabilityResp, 0, len(vas))
	for i := range vas {
		va := &vas[i]
		resp := vehicleAvailabilityResp{
			ID:           va.ID,
			Make:         va.Make,
			Model:        va.Model,
			Year:         va.Year,
			LicensePlate: va.LicensePlate,
			Status:       va.Status.String(),
			NextAvailable: va.NextAvailable.Format(
				model.DateLayout,
			),
		}
		if cb := va.CurrentBooking; cb != nil {
			resp.CurrentBooking = &currentBookingResp{
				Customer:  cb.Customer,
				StartDate: cb.StartDate.Format(model.DateLayout),
				EndDate:   cb.EndDate.Format(model.DateLayout),
			}
		}
		out = append(out, resp)
	}
	return out
}

type blockedPeriodResp struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicleId"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Reason      string `json:"reason"`
	CreatedDate string `json:"createdDate"`

	VehicleDescription string `json:"vehicleDescription,omitempty"`
}

// SerBlockedPeriod serializes one blocked period record.
func SerBlockedPeriod(bp *model.BlockedPeriod) blockedPeriodResp {
	return blockedPeriodResp{
		ID:          bp.ID,
		VehicleID:   bp.VehicleID,
		StartDate:   bp.StartDate.Format(model.DateLayout),
		EndDate:     bp.EndDate.Format(model.DateLayout),
		Reason:      bp.Reason,
		CreatedDate: bp.CreatedDate.Format(model.DateLayout),
	}
}

// SerBlockedPeriods serializes the active blocked periods listing,
// pairing each period with its vehicle description.
func SerBlockedPeriods(
	infos []model.BlockedPeriodInfo,
) []blockedPeriodResp {
	out := make([]blockedPeriodResp, 0, len(infos))
	for i := range infos {
		resp := SerBlockedPeriod(&infos[i].BlockedPeriod)
		resp.VehicleDescription = infos[i].VehicleDescription
		out = append(out, resp)
	}
	return out
}

type statsResp struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Booked      int64 `json:"booked"`
	Maintenance int64 `json:"maintenance"`
	Blocked     int64 `json:"blocked"`
}

// SerStats serializes the fleet-wide availability counters.
func SerStats(s *model.AvailabilityStats) statsResp {
	return statsResp{
		Total:       s.Total,
		Available:   s.Available,
		Booked:      s.Booked,
		Maintenance: s.Maintenance,
		Blocked:     s.Blocked,
	}
}
