// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource, allowing the
// vehicle catalog and maintenance records manipulation REST APIs to
// be accepted and delegated to the fleet use cases respectively.
package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/rental-fleet/pkg/core/usecase/fleetuc"
)

type resource struct {
	fleet *fleetuc.UseCase
}

// Register instantiates a resource adapting the fleet use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/fleet/v1/vehicles
//     in order to register a new vehicle in the catalog,
//  2. GET request to /api/fleet/v1/vehicles
//     in order to list the whole catalog,
//  3. GET request to /api/fleet/v1/vehicles/:vid
//     in order to resolve one vehicle,
//  4. GET request to /api/fleet/v1/vehicles/:vid/exists
//     in order to check whether one vehicle resolves in the catalog,
//  5. PUT request to /api/fleet/v1/vehicles/:vid
//     in order to overwrite the mutable fields of one vehicle,
//  6. DELETE request to /api/fleet/v1/vehicles/:vid
//     in order to remove one vehicle from the catalog,
//  7. POST request to /api/fleet/v1/vehicles/:vid/maintenances
//     in order to record a new shop visit of one vehicle,
//  8. GET request to /api/fleet/v1/vehicles/:vid/maintenances
//     in order to list the maintenance history of one vehicle,
//  9. PATCH request to /api/fleet/v1/maintenances/:mid
//     in order to patch one maintenance record,
//  10. DELETE request to /api/fleet/v1/maintenances/:mid
//     in order to remove one maintenance record.
func Register(r *gin.RouterGroup, fleet *fleetuc.UseCase) {
	rs := &resource{fleet: fleet}
	r.POST("vehicles", rs.AddVehicle)
	r.GET("vehicles", rs.ListVehicles)
	r.GET("vehicles/:vid", rs.GetVehicle)
	r.GET("vehicles/:vid/exists", rs.VehicleExists)
	r.PUT("vehicles/:vid", rs.UpdateVehicle)
	r.DELETE("vehicles/:vid", rs.DeleteVehicle)
	r.POST("vehicles/:vid/maintenances", rs.LogMaintenance)
	r.GET("vehicles/:vid/maintenances", rs.MaintenanceHistory)
	r.PATCH("maintenances/:mid", rs.UpdateMaintenance)
	r.DELETE("maintenances/:mid", rs.DeleteMaintenance)
}

func (rs *resource) AddVehicle(c *gin.Context) {
	v := rs.DserVehicleReq(c)
	if v == nil {
		return
	}
	created, err := rs.fleet.AddVehicle(c, *v)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerVehicle(created))
}

func (rs *resource) ListVehicles(c *gin.Context) {
	vs, err := rs.fleet.ListVehicles(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerVehicles(vs))
}

func (rs *resource) GetVehicle(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	v, err := rs.fleet.GetVehicle(c, *vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerVehicle(v))
}

func (rs *resource) VehicleExists(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	exists, err := rs.fleet.VehicleExists(c, *vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, existsResp{Exists: exists})
}

func (rs *resource) UpdateVehicle(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	v := rs.DserVehicleReq(c)
	if v == nil {
		return
	}
	v.ID = *vid
	updated, err := rs.fleet.UpdateVehicle(c, v)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerVehicle(updated))
}

func (rs *resource) DeleteVehicle(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	if err := rs.fleet.DeleteVehicle(c, *vid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) LogMaintenance(c *gin.Context) {
	in := rs.DserLogMaintenanceReq(c)
	if in == nil {
		return
	}
	m, err := rs.fleet.LogMaintenance(c, *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerMaintenance(m))
}

func (rs *resource) MaintenanceHistory(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	ms, err := rs.fleet.MaintenanceHistory(c, *vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerMaintenances(ms))
}

func (rs *resource) UpdateMaintenance(c *gin.Context) {
	mid, in := rs.DserUpdateMaintenanceReq(c)
	if in == nil {
		return
	}
	m, err := rs.fleet.UpdateMaintenance(c, *mid, *in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerMaintenance(m))
}

func (rs *resource) DeleteMaintenance(c *gin.Context) {
	mid := rs.DserMaintenanceID(c)
	if mid == nil {
		return
	}
	if err := rs.fleet.DeleteMaintenance(c, *mid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
