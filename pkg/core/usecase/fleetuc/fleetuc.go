// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fleetuc contains the fleet UseCase which manages the
// vehicle catalog and the maintenance records. Maintenance is coupled
// to the categorical vehicle status: logging a pending maintenance
// pulls the vehicle out of the rentable fleet by setting its status
// to maintenance (which the availability engine treats as an absolute
// veto), while completing the maintenance returns the vehicle to the
// available status. Both legs of that coupling run in a single
// transaction.
package fleetuc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// UseCase represents the fleet use case. It holds a database
// connection pool and the vehicles and maintenances repository
// instances (to be guided with the DB pool).
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
	maintsrp   repo.Maintenances
}

// New instantiates a fleet use case.
func New(
	p repo.Pool, v repo.Vehicles, m repo.Maintenances,
) *UseCase {
	return &UseCase{pool: p, vehiclesrp: v, maintsrp: m}
}

// AddVehicle use case registers a new vehicle in the catalog. The
// licence plate, make, and model may not be blank and the status
// defaults to available when left unset.
func (fleet *UseCase) AddVehicle(
	ctx context.Context, v model.Vehicle,
) (*model.Vehicle, error) {
	v.LicensePlate = strings.TrimSpace(v.LicensePlate)
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	switch {
	case v.LicensePlate == "":
		return nil, cerr.BadRequest(
			fmt.Errorf("licence plate is required"),
		)
	case v.Make == "":
		return nil, cerr.BadRequest(fmt.Errorf("make is required"))
	case v.Model == "":
		return nil, cerr.BadRequest(fmt.Errorf("model is required"))
	}
	if v.Status == model.VehicleStatusInvalid {
		v.Status = model.VehicleStatusAvailable
	}
	if err := v.Status.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	v.ID = uuid.New()
	err := fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return fleet.vehiclesrp.Conn(c).Create(ctx, &v)
		},
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetVehicle use case resolves one vehicle by its identifier.
func (fleet *UseCase) GetVehicle(
	ctx context.Context, vid uuid.UUID,
) (v *model.Vehicle, err error) {
	err = fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			v, err = fleet.vehiclesrp.Conn(c).FindByID(ctx, vid)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// VehicleExists use case reports whether the vid vehicle resolves in
// the catalog, without distinguishing why it may be absent.
func (fleet *UseCase) VehicleExists(
	ctx context.Context, vid uuid.UUID,
) (bool, error) {
	_, err := fleet.GetVehicle(ctx, vid)
	switch {
	case err == nil:
		return true, nil
	case cerr.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// ListVehicles use case returns the whole catalog.
func (fleet *UseCase) ListVehicles(
	ctx context.Context,
) (vs []model.Vehicle, err error) {
	err = fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			vs, err = fleet.vehiclesrp.Conn(c).FindAll(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// UpdateVehicle use case overwrites the mutable fields of an existing
// vehicle, returning a cerr.NotFound error if no such vehicle exists.
func (fleet *UseCase) UpdateVehicle(
	ctx context.Context, v *model.Vehicle,
) (updated *model.Vehicle, err error) {
	if err := v.Status.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			updated, err = fleet.vehiclesrp.Conn(c).Update(ctx, v)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteVehicle use case removes one vehicle from the catalog.
// Deleting an absent vehicle is not an error.
func (fleet *UseCase) DeleteVehicle(
	ctx context.Context, vid uuid.UUID,
) error {
	return fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return fleet.vehiclesrp.Conn(c).DeleteByID(ctx, vid)
		},
	)
}

// LogMaintenanceInput carries the creation parameters of one
// maintenance record.
type LogMaintenanceInput struct {
	VehicleID uuid.UUID

	MaintenanceDate time.Time
	ServiceDate     time.Time

	MechanicName string
	Issue        string
	CostCents    int64

	// Status defaults to pending when left unset.
	Status model.MaintenanceStatus
}

// LogMaintenance use case records a new shop visit for one vehicle.
// A pending record additionally flips the vehicle status to
// maintenance; both writes run in one transaction while holding the
// vehicle row lock. Unknown vehicles cause a cerr.NotFound error.
func (fleet *UseCase) LogMaintenance(
	ctx context.Context, in LogMaintenanceInput,
) (m *model.Maintenance, err error) {
	status := in.Status
	if status == model.MaintenanceStatusInvalid {
		status = model.MaintenanceStatusPending
	}
	if err := status.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	m = &model.Maintenance{
		ID:              uuid.New(),
		VehicleID:       in.VehicleID,
		MaintenanceDate: model.Date(in.MaintenanceDate),
		ServiceDate:     model.Date(in.ServiceDate),
		MechanicName:    strings.TrimSpace(in.MechanicName),
		Issue:           strings.TrimSpace(in.Issue),
		CostCents:       in.CostCents,
		Status:          status,
	}
	err = fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(
				ctx, func(ctx context.Context, tx repo.Tx) error {
					return fleet.logMaintenance(ctx, tx, m)
				},
			)
		},
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (fleet *UseCase) logMaintenance(
	ctx context.Context, tx repo.Tx, m *model.Maintenance,
) error {
	vq := fleet.vehiclesrp.Tx(tx)
	if _, err := vq.LockByID(ctx, m.VehicleID); err != nil {
		return fmt.Errorf("locking vehicle: %w", err)
	}
	if err := fleet.maintsrp.Tx(tx).Create(ctx, m); err != nil {
		return fmt.Errorf("creating maintenance record: %w", err)
	}
	if m.Status == model.MaintenanceStatusPending {
		_, err := vq.UpdateStatus(
			ctx, m.VehicleID, model.VehicleStatusMaintenance,
		)
		if err != nil {
			return fmt.Errorf("updating vehicle status: %w", err)
		}
	}
	return nil
}

// MaintenanceHistory use case returns the maintenance records of one
// vehicle, most recent service date first.
func (fleet *UseCase) MaintenanceHistory(
	ctx context.Context, vid uuid.UUID,
) (ms []model.Maintenance, err error) {
	err = fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			ms, err = fleet.maintsrp.Conn(c).FindByVehicle(ctx, vid)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return ms, nil
}

// UpdateMaintenanceInput carries the patchable fields of one
// maintenance record; nil or zero fields are left unmodified.
type UpdateMaintenanceInput struct {
	Issue        *string
	CostCents    *int64
	ServiceDate  *time.Time
	Status       *model.MaintenanceStatus
	MechanicName *string
}

// UpdateMaintenance use case patches an existing maintenance record.
// Completing a maintenance returns its vehicle to the available
// status; the record patch and the vehicle status change run in one
// transaction while holding the vehicle row lock.
func (fleet *UseCase) UpdateMaintenance(
	ctx context.Context, mid uuid.UUID, in UpdateMaintenanceInput,
) (m *model.Maintenance, err error) {
	if in.Status != nil {
		if err := in.Status.Validate(); err != nil {
			return nil, cerr.BadRequest(err)
		}
	}
	err = fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(
				ctx, func(ctx context.Context, tx repo.Tx) error {
					m, err = fleet.updateMaintenance(ctx, tx, mid, in)
					return err
				},
			)
		},
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (fleet *UseCase) updateMaintenance(
	ctx context.Context, tx repo.Tx,
	mid uuid.UUID, in UpdateMaintenanceInput,
) (*model.Maintenance, error) {
	mq := fleet.maintsrp.Tx(tx)
	m, err := mq.FindByID(ctx, mid)
	if err != nil {
		return nil, fmt.Errorf("finding maintenance record: %w", err)
	}
	vq := fleet.vehiclesrp.Tx(tx)
	if _, err := vq.LockByID(ctx, m.VehicleID); err != nil {
		return nil, fmt.Errorf("locking vehicle: %w", err)
	}
	if in.Issue != nil {
		m.Issue = strings.TrimSpace(*in.Issue)
	}
	if in.CostCents != nil && *in.CostCents > 0 {
		m.CostCents = *in.CostCents
	}
	if in.ServiceDate != nil {
		m.ServiceDate = model.Date(*in.ServiceDate)
	}
	if in.MechanicName != nil {
		m.MechanicName = strings.TrimSpace(*in.MechanicName)
	}
	if in.Status != nil {
		m.Status = *in.Status
		if m.Status == model.MaintenanceStatusCompleted {
			_, err := vq.UpdateStatus(
				ctx, m.VehicleID, model.VehicleStatusAvailable,
			)
			if err != nil {
				return nil, fmt.Errorf(
					"updating vehicle status: %w", err,
				)
			}
		}
	}
	m, err = mq.Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("updating maintenance record: %w", err)
	}
	return m, nil
}

// DeleteMaintenance use case removes one maintenance record,
// returning a cerr.NotFound error if no such record exists.
func (fleet *UseCase) DeleteMaintenance(
	ctx context.Context, mid uuid.UUID,
) error {
	return fleet.pool.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			mq := fleet.maintsrp.Conn(c)
			if _, err := mq.FindByID(ctx, mid); err != nil {
				return fmt.Errorf(
					"finding maintenance record: %w", err,
				)
			}
			return mq.DeleteByID(ctx, mid)
		},
	)
}
