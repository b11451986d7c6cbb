// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/internal/test/dbcontainer"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/routes"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	sql, err := os.ReadFile("testdata/schema.sql")
	igts.Require().NoError(err, "failed to read schema.sql file")
	err = igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			_, err := c.Exec(ctx, string(sql))
			return err
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	err = routes.Register(igts.Gin, igts.Pool)
	igts.Require().NoError(err, "failed to register Gin routes")
}

// futureDate formats a date the given number of days after today, as
// the blocking policies only accept strictly future dates.
func futureDate(days int) string {
	return model.AddDays(model.Today(), days).Format(model.DateLayout)
}

func jsonBody(igts *IntegrationGinTestSuite, body any) io.Reader {
	b, err := json.Marshal(body)
	igts.Require().NoError(err, "cannot marshal request body")
	return bytes.NewReader(b)
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	method, path string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, "/api/fleet/v1/"+path, body)
	igts.Require().NoError(err, "cannot create %s request", method)
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.Require().NoError(json.Unmarshal(b, res), "body is not json")
	}
	return w
}

type vehicleResp struct {
	ID           uuid.UUID `json:"id"`
	LicensePlate string    `json:"licensePlate"`
	Status       string    `json:"status"`
}

func (igts *IntegrationGinTestSuite) createVehicle() uuid.UUID {
	res := &vehicleResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "vehicles",
		jsonBody(igts, map[string]any{
			"licensePlate": "FLT-" + uuid.New().String()[:8],
			"make":         "Toyota",
			"model":        "Corolla",
			"year":         2023,
		}),
		res,
	)
	igts.Require().Equal(201, w.Code, "cannot register vehicle")
	igts.Require().NotEqual(uuid.Nil, res.ID)
	return res.ID
}

type checkResp struct {
	Available bool `json:"available"`
}

func (igts *IntegrationGinTestSuite) checkAvailability(
	vid uuid.UUID, start, end string,
) bool {
	res := &checkResp{}
	w := igts.sendReqRecvResp(
		http.MethodGet,
		"availability/check/"+vid.String()+
			"?startDate="+start+"&endDate="+end,
		nil, res,
	)
	igts.Require().Equal(200, w.Code, "availability check failed")
	return res.Available
}

func (igts *IntegrationGinTestSuite) TestVehicleValidation() {
	res := &struct {
		Make []string
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "vehicles",
		jsonBody(igts, map[string]any{
			"licensePlate": "FLT-0000",
			"model":        "Corolla",
			"year":         2023,
		}),
		res,
	)
	igts.Equal(400, w.Code)
	igts.Require().Equal(1, len(res.Make), "wrong make errors")
	igts.Contains(res.Make[0], "failed on the 'required' tag")
}

func (igts *IntegrationGinTestSuite) TestCheckValidation() {
	vid := uuid.New()
	res := &struct {
		StartDate []string
		EndDate   []string
	}{}
	w := igts.sendReqRecvResp(
		http.MethodGet,
		"availability/check/"+vid.String(),
		nil, res,
	)
	igts.Equal(400, w.Code)
	igts.Require().Equal(1, len(res.StartDate), "wrong startDate errors")
	igts.Contains(res.StartDate[0], "failed on the 'required' tag")
	igts.Require().Equal(1, len(res.EndDate), "wrong endDate errors")
	igts.Contains(res.EndDate[0], "failed on the 'required' tag")

	w = igts.sendReqRecvResp(
		http.MethodGet,
		"availability/check/"+vid.String()+
			"?startDate=01/02/2026&endDate="+futureDate(5),
		nil, res,
	)
	igts.Equal(400, w.Code)
	igts.Require().Equal(1, len(res.StartDate), "wrong startDate errors")
	igts.Contains(res.StartDate[0], "failed on the 'datetime' tag")
}

func (igts *IntegrationGinTestSuite) TestCheckUnknownVehicle() {
	res := &struct {
		Detail string
	}{}
	w := igts.sendReqRecvResp(
		http.MethodGet,
		"availability/check/"+uuid.New().String()+
			"?startDate="+futureDate(5)+"&endDate="+futureDate(9),
		nil, res,
	)
	igts.Equal(404, w.Code)
	igts.Contains(res.Detail, "no vehicle with id")
}

type blockedPeriodResp struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicleId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`

	VehicleDescription string `json:"vehicleDescription"`
}

func (igts *IntegrationGinTestSuite) TestBlockLifecycle() {
	vid := igts.createVehicle()
	igts.True(igts.checkAvailability(vid, futureDate(10), futureDate(14)))

	bp := &blockedPeriodResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "availability/blocks",
		jsonBody(igts, map[string]any{
			"vehicleId": vid.String(),
			"startDate": futureDate(10),
			"endDate":   futureDate(14),
			"reason":    "annual inspection",
		}),
		bp,
	)
	igts.Require().Equal(201, w.Code)
	igts.Equal(vid, bp.VehicleID)
	igts.Equal("annual inspection", bp.Reason)

	igts.False(
		igts.checkAvailability(vid, futureDate(12), futureDate(20)),
		"the blocked window must be reported occupied",
	)
	igts.False(
		igts.checkAvailability(vid, futureDate(14), futureDate(20)),
		"blocked periods claim their boundary dates inclusively",
	)

	conflict := &struct {
		Detail string
	}{}
	w = igts.sendReqRecvResp(
		http.MethodPost, "availability/blocks",
		jsonBody(igts, map[string]any{
			"vehicleId": vid.String(),
			"startDate": futureDate(13),
			"endDate":   futureDate(17),
			"reason":    "repaint",
		}),
		conflict,
	)
	igts.Equal(409, w.Code)
	igts.Contains(conflict.Detail, "already blocked")

	listed := []blockedPeriodResp{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "availability/blocked-periods", nil, &listed,
	)
	igts.Equal(200, w.Code)
	found := false
	for _, item := range listed {
		if item.ID == bp.ID {
			found = true
			igts.Equal("2023 Toyota Corolla", item.VehicleDescription)
		}
	}
	igts.True(found, "the created period must be listed as active")

	removed := &struct {
		Removed int64
	}{}
	w = igts.sendReqRecvResp(
		http.MethodDelete,
		"availability/vehicles/"+vid.String()+"/blocks",
		nil, removed,
	)
	igts.Equal(200, w.Code)
	igts.Equal(int64(1), removed.Removed)

	igts.True(
		igts.checkAvailability(vid, futureDate(12), futureDate(20)),
		"unblocking must free the calendar",
	)

	w = igts.sendReqRecvResp(
		http.MethodDelete,
		"availability/blocks/"+bp.ID.String(),
		nil, nil,
	)
	igts.Equal(204, w.Code, "removing an absent period is no error")
}

type bookingResp struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicleId"`
	PickupDate string    `json:"pickupDate"`
	ReturnDate string    `json:"returnDate"`
	Status     string    `json:"status"`
}

func (igts *IntegrationGinTestSuite) TestBookingLifecycle() {
	vid := igts.createVehicle()
	cid := uuid.New()

	b := &bookingResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "bookings",
		jsonBody(igts, map[string]any{
			"vehicleId":      vid.String(),
			"customerId":     cid.String(),
			"customerName":   "Jane Roe",
			"pickupDate":     futureDate(20),
			"returnDate":     futureDate(25),
			"totalCostCents": 45000,
		}),
		b,
	)
	igts.Require().Equal(201, w.Code)
	igts.Equal("active", b.Status, "status defaults to active")

	igts.False(
		igts.checkAvailability(vid, futureDate(22), futureDate(30)),
		"the booked window must be reported occupied",
	)
	igts.True(
		igts.checkAvailability(vid, futureDate(25), futureDate(30)),
		"a booking touching the boundary date permits a turnover",
	)

	conflict := &struct {
		Detail string
	}{}
	w = igts.sendReqRecvResp(
		http.MethodPost, "availability/blocks",
		jsonBody(igts, map[string]any{
			"vehicleId": vid.String(),
			"startDate": futureDate(22),
			"endDate":   futureDate(30),
			"reason":    "inspection",
		}),
		conflict,
	)
	igts.Equal(409, w.Code)
	igts.Contains(conflict.Detail, "bookings during the selected period")

	listed := []bookingResp{}
	w = igts.sendReqRecvResp(
		http.MethodGet,
		"vehicles/"+vid.String()+"/bookings",
		nil, &listed,
	)
	igts.Equal(200, w.Code)
	igts.Require().Len(listed, 1)
	igts.Equal(b.ID, listed[0].ID)

	w = igts.sendReqRecvResp(
		http.MethodPost,
		"bookings/"+b.ID.String()+"/cancellation",
		nil, b,
	)
	igts.Equal(200, w.Code)
	igts.Equal("cancelled", b.Status)

	again := &struct {
		Detail string
	}{}
	w = igts.sendReqRecvResp(
		http.MethodPost,
		"bookings/"+b.ID.String()+"/cancellation",
		nil, again,
	)
	igts.Equal(400, w.Code)
	igts.Contains(again.Detail, "already cancelled")

	igts.True(
		igts.checkAvailability(vid, futureDate(22), futureDate(30)),
		"cancellation must free the calendar",
	)
}

func (igts *IntegrationGinTestSuite) TestFleetProjection() {
	vid := igts.createVehicle()
	b := &bookingResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "bookings",
		jsonBody(igts, map[string]any{
			"vehicleId":    vid.String(),
			"customerId":   uuid.New().String(),
			"customerName": "Sam Smith",
			"pickupDate":   futureDate(3),
			"returnDate":   futureDate(8),
		}),
		b,
	)
	igts.Require().Equal(201, w.Code)

	listed := []struct {
		ID             uuid.UUID `json:"id"`
		NextAvailable  string    `json:"nextAvailable"`
		CurrentBooking *struct {
			Customer  string `json:"customer"`
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"currentBooking"`
	}{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "availability/vehicles", nil, &listed,
	)
	igts.Equal(200, w.Code)
	found := false
	for i := range listed {
		if listed[i].ID != vid {
			continue
		}
		found = true
		igts.Require().NotNil(listed[i].CurrentBooking)
		igts.Equal("Sam Smith", listed[i].CurrentBooking.Customer)
		igts.Equal(
			futureDate(9), listed[i].NextAvailable,
			"one day after the return date",
		)
	}
	igts.True(found, "the booked vehicle must be projected")
}

func (igts *IntegrationGinTestSuite) TestStats() {
	type statsResp struct {
		Total     int64
		Available int64
		Blocked   int64
	}
	before := &statsResp{}
	w := igts.sendReqRecvResp(
		http.MethodGet, "availability/stats", nil, before,
	)
	igts.Require().Equal(200, w.Code)

	vid := igts.createVehicle()
	w = igts.sendReqRecvResp(
		http.MethodPost, "availability/blocks",
		jsonBody(igts, map[string]any{
			"vehicleId": vid.String(),
			"startDate": futureDate(40),
			"endDate":   futureDate(44),
			"reason":    "inspection",
		}),
		&blockedPeriodResp{},
	)
	igts.Require().Equal(201, w.Code)

	after := &statsResp{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "availability/stats", nil, after,
	)
	igts.Equal(200, w.Code)
	igts.Equal(before.Total+1, after.Total)
	igts.Equal(
		before.Available+1, after.Available,
		"blocking does not change the categorical status",
	)
	igts.Equal(before.Blocked+1, after.Blocked)
}

func (igts *IntegrationGinTestSuite) TestMaintenanceFlow() {
	vid := igts.createVehicle()

	m := &struct {
		ID     uuid.UUID
		Status string
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPost,
		"vehicles/"+vid.String()+"/maintenances",
		jsonBody(igts, map[string]any{
			"serviceDate":  futureDate(2),
			"mechanicName": "Sam Smith",
			"issue":        "brake pads",
			"costCents":    12000,
		}),
		m,
	)
	igts.Require().Equal(201, w.Code)
	igts.Equal("pending", m.Status, "status defaults to pending")

	v := &vehicleResp{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "vehicles/"+vid.String(), nil, v,
	)
	igts.Equal(200, w.Code)
	igts.Equal(
		"maintenance", v.Status,
		"a pending record pulls the vehicle out of the fleet",
	)
	igts.False(
		igts.checkAvailability(vid, futureDate(50), futureDate(55)),
		"maintenance vetoes regardless of the dates",
	)

	w = igts.sendReqRecvResp(
		http.MethodPatch,
		"maintenances/"+m.ID.String(),
		jsonBody(igts, map[string]any{
			"status": "completed",
		}),
		m,
	)
	igts.Equal(200, w.Code)
	igts.Equal("completed", m.Status)

	w = igts.sendReqRecvResp(
		http.MethodGet, "vehicles/"+vid.String(), nil, v,
	)
	igts.Equal(200, w.Code)
	igts.Equal(
		"available", v.Status,
		"completion returns the vehicle to the fleet",
	)

	w = igts.sendReqRecvResp(
		http.MethodDelete,
		"maintenances/"+m.ID.String(),
		nil, nil,
	)
	igts.Equal(204, w.Code)
}
