// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/usecase/fleetuc"
)

type rawVehicleReq struct {
	LicensePlate string `json:"licensePlate" binding:"required"`
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required,gte=1900"`
	Colour       string `json:"colour" binding:"omitempty"`

	MileageLimitPerDay int64 `json:"mileageLimitPerDay" binding:"omitempty,gte=0"`
	WeeklyRateCents    int64 `json:"weeklyRateCents" binding:"omitempty,gte=0"`

	Status string `json:"status" binding:"omitempty,oneof=available rented maintenance unavailable"`
}

func (rs *resource) DserVehicleReq(c *gin.Context) *model.Vehicle {
	raw := &rawVehicleReq{}
	if ok := serdser.Bind(c, raw); !ok {
		return nil
	}
	v := &model.Vehicle{
		LicensePlate:       raw.LicensePlate,
		Make:               raw.Make,
		Model:              raw.Model,
		Year:               raw.Year,
		Colour:             raw.Colour,
		MileageLimitPerDay: raw.MileageLimitPerDay,
		WeeklyRateCents:    raw.WeeklyRateCents,
	}
	if raw.Status != "" {
		status, err := model.ParseVehicleStatus(raw.Status)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "status", err.Error())
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		v.Status = status
	}
	return v
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

type rawMaintenanceIDReq struct {
	ID string `uri:"mid" binding:"required,uuid"`
}

func (rs *resource) DserMaintenanceID(c *gin.Context) *uuid.UUID {
	raw := &rawMaintenanceIDReq{}
	if ok := serdser.BindURI(c, raw); !ok {
		return nil
	}
	mid, err := uuid.Parse(raw.ID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "mid", "Path param mid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &mid
}

type rawLogMaintenanceReq struct {
	MaintenanceDate string `json:"maintenanceDate" binding:"omitempty,datetime=2006-01-02"`
	ServiceDate     string `json:"serviceDate" binding:"required,datetime=2006-01-02"`

	MechanicName string `json:"mechanicName" binding:"omitempty"`
	Issue        string `json:"issue" binding:"required"`
	CostCents    int64  `json:"costCents" binding:"omitempty,gte=0"`

	Status string `json:"status" binding:"omitempty,oneof=pending completed"`
}

func (rs *resource) DserLogMaintenanceReq(
	c *gin.Context,
) *fleetuc.LogMaintenanceInput {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return nil
	}
	raw := &rawLogMaintenanceReq{}
	if ok := serdser.Bind(c, raw); !ok {
		return nil
	}
	in := &fleetuc.LogMaintenanceInput{
		VehicleID:    *vid,
		MechanicName: raw.MechanicName,
		Issue:        raw.Issue,
		CostCents:    raw.CostCents,
	}
	var errs map[string][]string
	var err error
	in.ServiceDate, err = model.ParseDate(raw.ServiceDate)
	serdser.Assert(&errs, err == nil, "serviceDate", "Expected a yyyy-mm-dd date.")
	switch raw.MaintenanceDate {
	case "":
		in.MaintenanceDate = model.Today()
	default:
		in.MaintenanceDate, err = model.ParseDate(raw.MaintenanceDate)
		serdser.Assert(&errs, err == nil, "maintenanceDate", "Expected a yyyy-mm-dd date.")
	}
	if raw.Status != "" {
		in.Status, err = model.ParseMaintenanceStatus(raw.Status)
		serdser.Assert(&errs, err == nil, "status", "Unknown status.")
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return in
}

type rawUpdateMaintenanceReq struct {
	Issue        *string `json:"issue" binding:"omitempty"`
	CostCents    *int64  `json:"costCents" binding:"omitempty,gte=0"`
	ServiceDate  *string `json:"serviceDate" binding:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status" binding:"omitempty,oneof=pending completed"`
	MechanicName *string `json:"mechanicName" binding:"omitempty"`
}

func (rs *resource) DserUpdateMaintenanceReq(
	c *gin.Context,
) (*uuid.UUID, *fleetuc.UpdateMaintenanceInput) {
	mid := rs.DserMaintenanceID(c)
	if mid == nil {
		return nil, nil
	}
	raw := &rawUpdateMaintenanceReq{}
	if ok := serdser.Bind(c, raw); !ok {
		return nil, nil
	}
	in := &fleetuc.UpdateMaintenanceInput{
		Issue:        raw.Issue,
		CostCents:    raw.CostCents,
		MechanicName: raw.MechanicName,
	}
	var errs map[string][]string
	if raw.ServiceDate != nil {
		d, err := model.ParseDate(*raw.ServiceDate)
		if serdser.Assert(&errs, err == nil, "serviceDate", "Expected a yyyy-mm-dd date.") {
			in.ServiceDate = &d
		}
	}
	if raw.Status != nil {
		status, err := model.ParseMaintenanceStatus(*raw.Status)
		if serdser.Assert(&errs, err == nil, "status", "Unknown status.") {
			in.Status = &status
		}
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil, nil
	}
	return mid, in
}

type vehicleResp struct {
	ID           uuid.UUID `json:"id"`
	LicensePlate string    `json:"licensePlate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Colour       string    `json:"colour,omitempty"`

	MileageLimitPerDay int64 `json:"mileageLimitPerDay"`
	WeeklyRateCents    int64 `json:"weeklyRateCents"`

	Status string `json:"status"`
}

// SerVehicle serializes one vehicle record.
func SerVehicle(v *model.Vehicle) vehicleResp {
	return vehicleResp{
		ID:                 v.ID,
		LicensePlate:       v.LicensePlate,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Colour:             v.Colour,
		MileageLimitPerDay: v.MileageLimitPerDay,
		WeeklyRateCents:    v.WeeklyRateCents,
		Status:             v.Status.String(),
	}
}

// SerVehicles serializes the vehicle catalog listing.
func SerVehicles(vs []model.Vehicle) []vehicleResp {
	out := make([]vehicleResp, 0, len(vs))
	for i := range vs {
		out = append(out, SerVehicle(&vs[i]))
	}
	return out
}

type existsResp struct {
	Exists bool `json:"exists"`
}

type maintenanceResp struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicleId"`

	MaintenanceDate string `json:"maintenanceDate"`
	ServiceDate     string `json:"serviceDate"`

	MechanicName string `json:"mechanicName,omitempty"`
	Issue        string `json:"issue"`
	CostCents    int64  `json:"costCents"`

	Status string `json:"status"`
}

// SerMaintenance serializes one maintenance record.
func SerMaintenance(m *model.Maintenance) maintenanceResp {
	return maintenanceResp{
		ID:              m.ID,
		VehicleID:       m.VehicleID,
		MaintenanceDate: m.MaintenanceDate.Format(model.DateLayout),
		ServiceDate:     m.ServiceDate.Format(model.DateLayout),
		MechanicName:    m.MechanicName,
		Issue:           m.Issue,
		CostCents:       m.CostCents,
		Status:          m.Status.String(),
	}
}

// SerMaintenances serializes the maintenance history listing.
func SerMaintenances(ms []model.Maintenance) []maintenanceResp {
	out := make([]maintenanceResp, 0, len(ms))
	for i := range ms {
		out = append(out, SerMaintenance(&ms[i]))
	}
	return out
}
