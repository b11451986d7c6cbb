// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package availrs realizes the availability resource, allowing the
// availability checking, blocking, and fleet projection REST APIs to
// be accepted and delegated to the availability use cases
// respectively.
package availrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/rental-fleet/pkg/core/usecase/availuc"
)

type resource struct {
	avail *availuc.UseCase
}

// Register instantiates a resource adapting the availability use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/fleet/v1/availability/check/:vid
//     in order to check the availability of a vehicle over a range of
//     dates (given as the startDate and endDate query parameters),
//  2. GET request to /api/fleet/v1/availability/vehicles
//     in order to project the per-vehicle fleet availability,
//  3. GET request to /api/fleet/v1/availability/blocked-periods
//     in order to list the active blocked periods,
//  4. GET request to /api/fleet/v1/availability/stats
//     in order to aggregate the fleet-wide availability counters,
//  5. POST request to /api/fleet/v1/availability/blocks
//     in order to block a vehicle over a range of dates,
//  6. DELETE request to /api/fleet/v1/availability/vehicles/:vid/blocks
//     in order to remove all blocked periods of a vehicle,
//  7. DELETE request to /api/fleet/v1/availability/blocks/:pid
//     in order to remove one blocked period.
func Register(r *gin.RouterGroup, avail *availuc.UseCase) {
	rs := &resource{avail: avail}
	r.GET("availability/check/:vid", rs.CheckAvailability)
	r.GET("availability/vehicles", rs.ListFleetAvailability)
	r.GET("availability/blocked-periods", rs.ListBlockedPeriods)
	r.GET("availability/stats", rs.GetStats)
	r.POST("availability/blocks", rs.BlockVehicle)
	r.DELETE("availability/vehicles/:vid/blocks", rs.UnblockVehicle)
	r.DELETE("availability/blocks/:pid", rs.UnblockPeriod)
}

func (rs *resource) CheckAvailability(c *gin.Context) {
	req := rs.DserCheckReq(c)
	if req == nil {
		return
	}
	free, err := rs.avail.IsVehicleAvailable(
		c, req.VehicleID, req.Period,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, checkResp{Available: free})
}

func (rs *resource) ListFleetAvailability(c *gin.Context) {
	out, err := rs.avail.VehiclesWithAvailability(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerFleetAvailability(out))
}

func (rs *resource) ListBlockedPeriods(c *gin.Context) {
	out, err := rs.avail.ActiveBlockedPeriods(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerBlockedPeriods(out))
}

func (rs *resource) GetStats(c *gin.Context) {
	stats, err := rs.avail.Stats(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerStats(stats))
}

func (rs *resource) BlockVehicle(c *gin.Context) {
	req := rs.DserBlockReq(c)
	if req == nil {
		return
	}
	bp, err := rs.avail.BlockVehicle(
		c, req.VehicleID, req.Period, req.Reason,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerBlockedPeriod(bp))
}

func (rs *resource) UnblockVehicle(c *gin.Context) {
	vid := rs.DserVehicleID(c)
	if vid == nil {
		return
	}
	count, err := rs.avail.UnblockVehicle(c, *vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, unblockResp{Removed: count})
}

func (rs *resource) UnblockPeriod(c *gin.Context) {
	pid := rs.DserPeriodID(c)
	if pid == nil {
		return
	}
	if err := rs.avail.UnblockPeriod(c, *pid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
