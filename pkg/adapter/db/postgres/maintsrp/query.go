// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package maintsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"gorm.io/gorm/clause"
)

type gMaintenance struct {
	MID uuid.UUID `gorm:"primaryKey;type:uuid;column:mid"`
	VID uuid.UUID `gorm:"type:uuid;column:vid;not null;index"`

	MaintenanceDate time.Time `gorm:"type:date;not null"`
	ServiceDate     time.Time `gorm:"type:date;not null"`

	MechanicName string `gorm:"size:128"`
	Issue        string `gorm:"size:512;not null"`
	CostCents    int64  `gorm:"not null;default:0"`

	Status string `gorm:"size:16;not null;index"`
}

func (gm *gMaintenance) TableName() string {
	return "maintenances"
}

func (gm *gMaintenance) Model() (*model.Maintenance, error) {
	status, err := model.ParseMaintenanceStatus(gm.Status)
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", gm.Status, err)
	}
	return &model.Maintenance{
		ID:              gm.MID,
		VehicleID:       gm.VID,
		MaintenanceDate: model.Date(gm.MaintenanceDate),
		ServiceDate:     model.Date(gm.ServiceDate),
		MechanicName:    gm.MechanicName,
		Issue:           gm.Issue,
		CostCents:       gm.CostCents,
		Status:          status,
	}, nil
}

func row(m *model.Maintenance) *gMaintenance {
	return &gMaintenance{
		MID:             m.ID,
		VID:             m.VehicleID,
		MaintenanceDate: m.MaintenanceDate,
		ServiceDate:     m.ServiceDate,
		MechanicName:    m.MechanicName,
		Issue:           m.Issue,
		CostCents:       m.CostCents,
		Status:          m.Status.String(),
	}
}

// Migratable returns the row model of the maintenances table for the
// schema auto-migration.
func Migratable() any {
	return &gMaintenance{}
}

func FindByID[Q postgres.Queryer](
	ctx context.Context, q Q, mid uuid.UUID,
) (*model.Maintenance, error) {
	gdb := q.GORM(ctx)
	var gms []gMaintenance
	gdb.Where("mid=?", mid).Limit(1).Find(&gms)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gms) != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no maintenance record with id %s", mid),
		)
	}
	return gms[0].Model()
}

func FindByVehicle[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) ([]model.Maintenance, error) {
	gdb := q.GORM(ctx)
	var gms []gMaintenance
	gdb.Where("vid=?", vid).
		Order("service_date desc, mid asc").Find(&gms)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ms := make([]model.Maintenance, 0, len(gms))
	for i := range gms {
		m, err := gms[i].Model()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ms = append(ms, *m)
	}
	return ms, nil
}

func Create[Q postgres.Queryer](
	ctx context.Context, q Q, m *model.Maintenance,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(m)).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Update[Q postgres.Queryer](
	ctx context.Context, q Q, m *model.Maintenance,
) (*model.Maintenance, error) {
	gdb := q.GORM(ctx)
	var gms []gMaintenance
	gdb.Model(&gms).Clauses(clause.Returning{}).Select(
		"maintenance_date", "service_date",
		"mechanic_name", "issue", "cost_cents", "status",
	).Where(
		"mid=?", m.ID,
	).Updates(row(m))
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gms); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gms[0].Model()
}

func DeleteByID[Q postgres.Queryer](
	ctx context.Context, q Q, mid uuid.UUID,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Where(
		"mid=?", mid,
	).Delete(&gMaintenance{}).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
