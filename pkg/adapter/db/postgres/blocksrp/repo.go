// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package blocksrp implements the repo.BlockedPeriods repository
// interface, storing the administrative exclusion windows in the
// blocked_periods table.
package blocksrp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (blocks *Repo) Conn(c repo.Conn) repo.BlockedPeriodsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.BlockedPeriod, error) {
	return FindByVehicle(ctx, cq.Conn, vid)
}

func (cq connQueryer) FindOverlapping(
	ctx context.Context, vid uuid.UUID, start, end time.Time,
) ([]model.BlockedPeriod, error) {
	return FindOverlapping(ctx, cq.Conn, vid, start, end)
}

func (cq connQueryer) FindActive(
	ctx context.Context, today time.Time,
) ([]model.BlockedPeriod, error) {
	return FindActive(ctx, cq.Conn, today)
}

func (cq connQueryer) Create(
	ctx context.Context, b *model.BlockedPeriod,
) error {
	return Create(ctx, cq.Conn, b)
}

func (cq connQueryer) DeleteByVehicle(
	ctx context.Context, vid uuid.UUID,
) (int64, error) {
	return DeleteByVehicle(ctx, cq.Conn, vid)
}

func (cq connQueryer) DeleteByID(
	ctx context.Context, bid uuid.UUID,
) (int64, error) {
	return DeleteByID(ctx, cq.Conn, bid)
}

type txQueryer struct {
	*postgres.Tx
}

func (blocks *Repo) Tx(tx repo.Tx) repo.BlockedPeriodsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.BlockedPeriod, error) {
	return FindByVehicle(ctx, tq.Tx, vid)
}

func (tq txQueryer) FindOverlapping(
	ctx context.Context, vid uuid.UUID, start, end time.Time,
) ([]model.BlockedPeriod, error) {
	return FindOverlapping(ctx, tq.Tx, vid, start, end)
}

func (tq txQueryer) FindActive(
	ctx context.Context, today time.Time,
) ([]model.BlockedPeriod, error) {
	return FindActive(ctx, tq.Tx, today)
}

func (tq txQueryer) Create(
	ctx context.Context, b *model.BlockedPeriod,
) error {
	return Create(ctx, tq.Tx, b)
}

func (tq txQueryer) DeleteByVehicle(
	ctx context.Context, vid uuid.UUID,
) (int64, error) {
	return DeleteByVehicle(ctx, tq.Tx, vid)
}

func (tq txQueryer) DeleteByID(
	ctx context.Context, bid uuid.UUID,
) (int64, error) {
	return DeleteByID(ctx, tq.Tx, bid)
}
