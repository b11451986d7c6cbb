// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fleetuc_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/internal/test/fakerepo"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
	"github.com/momeni/rental-fleet/pkg/core/usecase/fleetuc"
	"github.com/stretchr/testify/suite"
)

func date(s string) time.Time {
	t, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

type FleetTestSuite struct {
	suite.Suite

	Ctx   context.Context
	Store *fakerepo.Store
	Pool  repo.Pool
	Fleet *fleetuc.UseCase
}

func TestFleetTestSuite(t *testing.T) {
	suite.Run(t, &FleetTestSuite{})
}

func (fts *FleetTestSuite) SetupTest() {
	fts.Ctx = context.Background()
	fts.Store, fts.Pool = fakerepo.New()
	fts.Fleet = fleetuc.New(
		fts.Pool, fakerepo.NewVehicles(), fakerepo.NewMaintenances(),
	)
}

func (fts *FleetTestSuite) addVehicle() *model.Vehicle {
	v, err := fts.Fleet.AddVehicle(fts.Ctx, model.Vehicle{
		LicensePlate: "FLT-1001",
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2023,
	})
	fts.Require().NoError(err)
	return v
}

func (fts *FleetTestSuite) TestAddVehicle() {
	v := fts.addVehicle()
	fts.NotEqual(uuid.Nil, v.ID)
	fts.Equal(
		model.VehicleStatusAvailable, v.Status,
		"status defaults to available",
	)

	got, err := fts.Fleet.GetVehicle(fts.Ctx, v.ID)
	fts.NoError(err)
	fts.Equal("FLT-1001", got.LicensePlate)
}

func (fts *FleetTestSuite) TestAddVehicleValidation() {
	for _, tc := range []struct {
		name string
		v    model.Vehicle
	}{
		{
			name: "blank plate",
			v: model.Vehicle{
				LicensePlate: "  ", Make: "Toyota", Model: "Corolla",
			},
		},
		{
			name: "blank make",
			v: model.Vehicle{
				LicensePlate: "FLT-1001", Model: "Corolla",
			},
		},
		{
			name: "blank model",
			v: model.Vehicle{
				LicensePlate: "FLT-1001", Make: "Toyota",
			},
		},
	} {
		fts.Run(tc.name, func() {
			_, err := fts.Fleet.AddVehicle(fts.Ctx, tc.v)
			var ce *cerr.Error
			fts.ErrorAs(err, &ce)
			fts.Equal(400, ce.HTTPStatusCode)
		})
	}
}

func (fts *FleetTestSuite) TestVehicleExists() {
	v := fts.addVehicle()
	ok, err := fts.Fleet.VehicleExists(fts.Ctx, v.ID)
	fts.NoError(err)
	fts.True(ok)

	ok, err = fts.Fleet.VehicleExists(fts.Ctx, uuid.New())
	fts.NoError(err, "absence is an answer, not an error")
	fts.False(ok)
}

func (fts *FleetTestSuite) TestListVehicles() {
	fts.addVehicle()
	v2, err := fts.Fleet.AddVehicle(fts.Ctx, model.Vehicle{
		LicensePlate: "FLT-0500",
		Make:         "Honda",
		Model:        "Civic",
		Year:         2022,
	})
	fts.Require().NoError(err)

	vs, err := fts.Fleet.ListVehicles(fts.Ctx)
	fts.Require().NoError(err)
	fts.Require().Len(vs, 2)
	fts.Equal(
		v2.ID, vs[0].ID,
		"the catalog is ordered by the licence plate",
	)
}

func (fts *FleetTestSuite) TestUpdateVehicle() {
	v := fts.addVehicle()
	v.Status = model.VehicleStatusRented
	updated, err := fts.Fleet.UpdateVehicle(fts.Ctx, v)
	fts.Require().NoError(err)
	fts.Equal(model.VehicleStatusRented, updated.Status)

	v.ID = uuid.New()
	_, err = fts.Fleet.UpdateVehicle(fts.Ctx, v)
	fts.True(cerr.IsNotFound(err), "expected a not-found error")
}

func (fts *FleetTestSuite) TestDeleteVehicle() {
	v := fts.addVehicle()
	fts.NoError(fts.Fleet.DeleteVehicle(fts.Ctx, v.ID))
	fts.NoError(
		fts.Fleet.DeleteVehicle(fts.Ctx, v.ID),
		"deleting an absent vehicle is no error",
	)
}

func (fts *FleetTestSuite) TestLogMaintenance() {
	v := fts.addVehicle()
	m, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       v.ID,
		MaintenanceDate: date("2026-06-01"),
		ServiceDate:     date("2026-06-03"),
		MechanicName:    "Sam Smith",
		Issue:           "brake pads",
		CostCents:       12000,
	})
	fts.Require().NoError(err)
	fts.Equal(
		model.MaintenanceStatusPending, m.Status,
		"status defaults to pending",
	)

	got, err := fts.Fleet.GetVehicle(fts.Ctx, v.ID)
	fts.Require().NoError(err)
	fts.Equal(
		model.VehicleStatusMaintenance, got.Status,
		"a pending record pulls the vehicle out of the fleet",
	)
}

func (fts *FleetTestSuite) TestLogCompletedMaintenance() {
	v := fts.addVehicle()
	_, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       v.ID,
		MaintenanceDate: date("2026-05-01"),
		ServiceDate:     date("2026-05-02"),
		Issue:           "oil change",
		Status:          model.MaintenanceStatusCompleted,
	})
	fts.Require().NoError(err)

	got, err := fts.Fleet.GetVehicle(fts.Ctx, v.ID)
	fts.Require().NoError(err)
	fts.Equal(
		model.VehicleStatusAvailable, got.Status,
		"a completed record leaves the vehicle status alone",
	)
}

func (fts *FleetTestSuite) TestLogMaintenanceUnknownVehicle() {
	_, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       uuid.New(),
		MaintenanceDate: date("2026-06-01"),
		ServiceDate:     date("2026-06-03"),
		Issue:           "brake pads",
	})
	fts.True(cerr.IsNotFound(err), "expected a not-found error")
}

func (fts *FleetTestSuite) TestMaintenanceHistory() {
	v := fts.addVehicle()
	old, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       v.ID,
		MaintenanceDate: date("2026-01-01"),
		ServiceDate:     date("2026-01-02"),
		Issue:           "oil change",
		Status:          model.MaintenanceStatusCompleted,
	})
	fts.Require().NoError(err)
	recent, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       v.ID,
		MaintenanceDate: date("2026-06-01"),
		ServiceDate:     date("2026-06-03"),
		Issue:           "brake pads",
	})
	fts.Require().NoError(err)

	ms, err := fts.Fleet.MaintenanceHistory(fts.Ctx, v.ID)
	fts.Require().NoError(err)
	fts.Require().Len(ms, 2)
	fts.Equal(
		recent.ID, ms[0].ID,
		"the most recent service date comes first",
	)
	fts.Equal(old.ID, ms[1].ID)
}

func (fts *FleetTestSuite) TestUpdateMaintenance() {
	v := fts.addVehicle()
	m, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       v.ID,
		MaintenanceDate: date("2026-06-01"),
		ServiceDate:     date("2026-06-03"),
		Issue:           "brake pads",
		CostCents:       12000,
	})
	fts.Require().NoError(err)

	issue := "brake pads and rotors"
	cost := int64(21500)
	completed := model.MaintenanceStatusCompleted
	updated, err := fts.Fleet.UpdateMaintenance(
		fts.Ctx, m.ID, fleetuc.UpdateMaintenanceInput{
			Issue:     &issue,
			CostCents: &cost,
			Status:    &completed,
		},
	)
	fts.Require().NoError(err)
	fts.Equal(issue, updated.Issue)
	fts.Equal(cost, updated.CostCents)
	fts.Equal(completed, updated.Status)

	got, err := fts.Fleet.GetVehicle(fts.Ctx, v.ID)
	fts.Require().NoError(err)
	fts.Equal(
		model.VehicleStatusAvailable, got.Status,
		"completion returns the vehicle to the fleet",
	)
}

func (fts *FleetTestSuite) TestUpdateMaintenanceNotFound() {
	issue := "brake pads"
	_, err := fts.Fleet.UpdateMaintenance(
		fts.Ctx, uuid.New(),
		fleetuc.UpdateMaintenanceInput{Issue: &issue},
	)
	fts.True(cerr.IsNotFound(err), "expected a not-found error")
}

func (fts *FleetTestSuite) TestDeleteMaintenance() {
	v := fts.addVehicle()
	m, err := fts.Fleet.LogMaintenance(fts.Ctx, fleetuc.LogMaintenanceInput{
		VehicleID:       v.ID,
		MaintenanceDate: date("2026-06-01"),
		ServiceDate:     date("2026-06-03"),
		Issue:           "brake pads",
	})
	fts.Require().NoError(err)

	fts.NoError(fts.Fleet.DeleteMaintenance(fts.Ctx, m.ID))

	err = fts.Fleet.DeleteMaintenance(fts.Ctx, m.ID)
	fts.True(cerr.IsNotFound(err), "expected a not-found error")
}
