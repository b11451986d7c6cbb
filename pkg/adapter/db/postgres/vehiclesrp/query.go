// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gVehicle struct {
	VID          uuid.UUID `gorm:"primaryKey;type:uuid;column:vid"`
	LicensePlate string    `gorm:"uniqueIndex;size:32;not null"`
	Make         string    `gorm:"size:64;not null"`
	Model        string    `gorm:"size:64;not null"`
	Year         int       `gorm:"not null"`
	Colour       string    `gorm:"size:32"`

	MileageLimitPerDay int64 `gorm:"not null;default:0"`
	WeeklyRateCents    int64 `gorm:"not null;default:0"`

	Status string `gorm:"size:16;not null;index"`
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

func (gv *gVehicle) toModel() (*model.Vehicle, error) {
	status, err := model.ParseVehicleStatus(gv.Status)
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", gv.Status, err)
	}
	return &model.Vehicle{
		ID:                 gv.VID,
		LicensePlate:       gv.LicensePlate,
		Make:               gv.Make,
		Model:              gv.Model,
		Year:               gv.Year,
		Colour:             gv.Colour,
		MileageLimitPerDay: gv.MileageLimitPerDay,
		WeeklyRateCents:    gv.WeeklyRateCents,
		Status:             status,
	}, nil
}

func row(v *model.Vehicle) *gVehicle {
	return &gVehicle{
		VID:                v.ID,
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

// Migratable returns the row model of the vehicles table for the
// schema auto-migration.
func Migratable() any {
	return &gVehicle{}
}

func FindByID[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	gdb.Where("vid=?", vid).Limit(1).Find(&gvs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gvs) != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %s", vid),
		)
	}
	return gvs[0].toModel()
}

// LockByID resolves one vehicle while acquiring a FOR UPDATE
// row-level lock which is held until the end of the ongoing
// transaction, serializing the writers which compete over the
// calendar of this vehicle.
func LockByID(
	ctx context.Context, tx *postgres.Tx, vid uuid.UUID,
) (*model.Vehicle, error) {
	gdb := tx.GORM(ctx)
	var gvs []gVehicle
	gdb.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vid=?", vid).Limit(1).Find(&gvs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gvs) != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %s", vid),
		)
	}
	return gvs[0].toModel()
}

func FindAll[Q postgres.Queryer](
	ctx context.Context, q Q,
) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	gdb.Order("license_plate asc, vid asc").Find(&gvs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	vs := make([]model.Vehicle, 0, len(gvs))
	for i := range gvs {
		v, err := gvs[i].toModel()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		vs = append(vs, *v)
	}
	return vs, nil
}

func Create[Q postgres.Queryer](
	ctx context.Context, q Q, v *model.Vehicle,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(v)).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Update[Q postgres.Queryer](
	ctx context.Context, q Q, v *model.Vehicle,
) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	gdb.Model(&gvs).Clauses(clause.Returning{}).Select(
		"license_plate", "make", "model", "year", "colour",
		"mileage_limit_per_day", "weekly_rate_cents", "status",
	).Where(
		"vid=?", v.ID,
	).Updates(row(v))
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].toModel()
}

func UpdateStatus[Q postgres.Queryer](
	ctx context.Context, q Q,
	vid uuid.UUID, status model.VehicleStatus,
) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gvs []gVehicle
	gdb.Model(&gvs).Clauses(clause.Returning{}).Select(
		"status",
	).Where(
		"vid=?", vid,
	).Updates(gVehicle{
		Status: status.String(),
	})
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gvs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gvs[0].toModel()
}

func DeleteByID[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Where(
		"vid=?", vid,
	).Delete(&gVehicle{}).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
