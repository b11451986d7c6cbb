// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookingsrp

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

type gBooking struct {
	BID uuid.UUID `gorm:"primaryKey;type:uuid;column:bid"`
	VID uuid.UUID `gorm:"type:uuid;column:vid;not null;index"`
	CID uuid.UUID `gorm:"type:uuid;column:cid;not null;index"`

	CustomerName string `gorm:"size:128;not null"`

	PickupDate time.Time `gorm:"type:date;not null"`
	ReturnDate time.Time `gorm:"type:date;not null"`

	PickupLocation string `gorm:"size:128"`
	ReturnLocation string `gorm:"size:128"`

	TotalCostCents int64 `gorm:"not null;default:0"`

	Status string `gorm:"size:16;not null;index"`
}

func (gb *gBooking) TableName() string {
	return "bookings"
}

func (gb *gBooking) Model() (*model.Booking, error) {
	status, err := model.ParseBookingStatus(gb.Status)
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", gb.Status, err)
	}
	return &model.Booking{
		ID:             gb.BID,
		VehicleID:      gb.VID,
		CustomerID:     gb.CID,
		CustomerName:   gb.CustomerName,
		PickupDate:     model.Date(gb.PickupDate),
		ReturnDate:     model.Date(gb.ReturnDate),
		PickupLocation: gb.PickupLocation,
		ReturnLocation: gb.ReturnLocation,
		TotalCostCents: gb.TotalCostCents,
		Status:         status,
	}, nil
}

func row(b *model.Booking) *gBooking {
	return &gBooking{
		BID:            b.ID,
		VID:            b.VehicleID,
		CID:            b.CustomerID,
		CustomerName:   b.CustomerName,
		PickupDate:     b.PickupDate,
		ReturnDate:     b.ReturnDate,
		PickupLocation: b.PickupLocation,
		ReturnLocation: b.ReturnLocation,
		TotalCostCents: b.TotalCostCents,
		Status:         b.Status.String(),
	}
}

func rows2models(gbs []gBooking) ([]model.Booking, error) {
	bs := make([]model.Booking, 0, len(gbs))
	for i := range gbs {
		b, err := gbs[i].Model()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		bs = append(bs, *b)
	}
	return bs, nil
}

// Migratable returns the row model of the bookings table for the
// schema auto-migration.
func Migratable() any {
	return &gBooking{}
}

func FindByID[Q postgres.Queryer](
	ctx context.Context, q Q, bid uuid.UUID,
) (*model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	gdb.Where("bid=?", bid).Limit(1).Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gbs) != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no booking with id %s", bid),
		)
	}
	return gbs[0].Model()
}

func FindAll[Q postgres.Queryer](
	ctx context.Context, q Q,
) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	gdb.Order("pickup_date asc, bid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs)
}

func FindByVehicle[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	gdb.Where("vid=?", vid).
		Order("pickup_date asc, bid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs)
}

func FindActiveByVehicle[Q postgres.Queryer](
	ctx context.Context, q Q, vid uuid.UUID,
) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	gdb.Where(
		"vid=? AND status=?",
		vid, model.BookingStatusActive.String(),
	).Order("pickup_date asc, bid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs)
}

func FindByCustomer[Q postgres.Queryer](
	ctx context.Context, q Q, cid uuid.UUID,
) ([]model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	gdb.Where("cid=?", cid).
		Order("pickup_date asc, bid asc").Find(&gbs)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2models(gbs)
}

func Create[Q postgres.Queryer](
	ctx context.Context, q Q, b *model.Booking,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Create(row(b)).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Update[Q postgres.Queryer](
	ctx context.Context, q Q, b *model.Booking,
) (*model.Booking, error) {
	gdb := q.GORM(ctx)
	var gbs []gBooking
	gdb.Model(&gbs).Clauses(clause.Returning{}).Select(
		"vid", "cid", "customer_name",
		"pickup_date", "return_date",
		"pickup_location", "return_location",
		"total_cost_cents", "status",
	).Where(
		"bid=?", b.ID,
	).Updates(row(b))
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gbs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gbs[0].Model()
}

func DeleteByID[Q postgres.Queryer](
	ctx context.Context, q Q, bid uuid.UUID,
) error {
	gdb := q.GORM(ctx)
	if err := gdb.Where(
		"bid=?", bid,
	).Delete(&gBooking{}).Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
