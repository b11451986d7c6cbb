// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package blocksrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres"
	"github.com/momeni/rental-fleet/pkg/core/model"
)

type gBlockedPeriod struct {
	PID uuid.UUID `gorm:"primaryKey;type:uuid;column:pid"`
	VID uuid.UUID `gorm:"type:uuid;column:vid;not null;index"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null;index"`

	Reason      string    `gorm:"size:256;not null"`
	CreatedDate time.Time `gorm:"type:date;not null"`
}

func (gb *gBlockedPeriod) TableName() string {
	return "blocked_periods"
}

func (gb *gBlockedPeriod) Model() *model.BlockedPeriod {
	return &model.BlockedPeriod{
		ID:          gb.PID,
		VehicleID:   gb.VID,
		StartDate:   model.Date(gb.StartDate),
		EndDate:     model.Date(gb.EndDate),
		Reason:      gb.Reason,
		CreatedDate: model.Date(gb.CreatedDate),
	}
}

func row(b *model.BlockedPeriod) *gBlockedPeriod {
	return &gBlockedPeriod{
		PID:         b.ID,
		VID:         b.VehicleID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Reason:      b.Reason,
		CreatedDate: b.CreatedDate,
	}
}

func rows2models(gbs []gBlockedPeriod) []model.BlockedPeriod {
	bs := make([]model.BlockedPeriod, 0, len(gbs))
	for i := range gbs {
		bs = append(bs, *gbs[i].Model())
	}
	return bs
}

// Migratable returns the row model of the blocked_periods table for
// the schema auto-migration.
func Migratable() any {
	return &gBlockedPeriod{}
}

func FindByVehicle[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) ([]model.BlockedPeriod, error) {
	gdb := q.GORM(ctx)
	var gbs []gBlockedPeriod
	gdb.Where("vid=?", vid).
		Order("start_date asc, pid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs), nil
}

// FindOverlapping compares the inclusive date boundaries, so a period
// which merely shares a boundary date with the [start, end] window is
// reported too.
func FindOverlapping[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID, start, end time.Time,
) ([]model.BlockedPeriod, error) {
	gdb := q.GORM(ctx)
	var gbs []gBlockedPeriod
	gdb.Where(
		"vid=? AND start_date <= ? AND end_date >= ?",
		vid, end, start,
	).Order("start_date asc, pid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs), nil
}

func FindActive[Q postgres.Queryer](
	ctx context.Context, q Q, today time.Time,
) ([]model.BlockedPeriod, error) {
	gdb := q.GORM(ctx)
	var gbs []gBlockedPeriod
	gdb.Where("end_date >= ?", today).
		Order("start_date asc, pid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs), nil
}

func Create[Q postgres.Queryer](
	ctx context.Context, q Q, b *model.BlockedPeriod,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(b)).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func DeleteByVehicle[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) (int64, error) {
	gdb := q.GORM(ctx).Where(
		"vid=?", vid,
	).Delete(&gBlockedPeriod{})
	if err := gdb.Error; err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return gdb.RowsAffected, nil
}

func DeleteByID[Q postgres.Queryer](
	ctx context.Context, q Q, bid uuid.UUID,
) (int64, error) {
	gdb := q.GORM(ctx).Where(
		"pid=?", bid,
	).Delete(&gBlockedPeriod{})
	if err := gdb.Error; err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return gdb.RowsAffected, nil
}
