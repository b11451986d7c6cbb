// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrp implements the repo.Vehicles repository
// interface, storing the vehicle catalog in the vehicles table.
package vehiclesrp

import (
	"context"

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

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(
	ctx context.Context, vid uuid.UUID,
) (*model.Vehicle, error) {
	return FindByID(ctx, cq.Conn, vid)
}

func (cq connQueryer) FindAll(
	ctx context.Context,
) ([]model.Vehicle, error) {
	return FindAll(ctx, cq.Conn)
}

func (cq connQueryer) Create(
	ctx context.Context, v *model.Vehicle,
) error {
	return Create(ctx, cq.Conn, v)
}

func (cq connQueryer) Update(
	ctx context.Context, v *model.Vehicle,
) (*model.Vehicle, error) {
	return Update(ctx, cq.Conn, v)
}

func (cq connQueryer) UpdateStatus(
	ctx context.Context, vid uuid.UUID, status model.VehicleStatus,
) (*model.Vehicle, error) {
	return UpdateStatus(ctx, cq.Conn, vid, status)
}

func (cq connQueryer) DeleteByID(
	ctx context.Context, vid uuid.UUID,
) error {
	return DeleteByID(ctx, cq.Conn, vid)
}

type txQueryer struct {
	*postgres.Tx
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(
	ctx context.Context, vid uuid.UUID,
) (*model.Vehicle, error) {
	return FindByID(ctx, tq.Tx, vid)
}

func (tq txQueryer) LockByID(
	ctx context.Context, vid uuid.UUID,
) (*model.Vehicle, error) {
	return LockByID(ctx, tq.Tx, vid)
}

func (tq txQueryer) FindAll(
	ctx context.Context,
) ([]model.Vehicle, error) {
	return FindAll(ctx, tq.Tx)
}

func (tq txQueryer) Create(
	ctx context.Context, v *model.Vehicle,
) error {
	return Create(ctx, tq.Tx, v)
}

func (tq txQueryer) Update(
	ctx context.Context, v *model.Vehicle,
) (*model.Vehicle, error) {
	return Update(ctx, tq.Tx, v)
}

func (tq txQueryer) UpdateStatus(
	ctx context.Context, vid uuid.UUID, status model.VehicleStatus,
) (*model.Vehicle, error) {
	return UpdateStatus(ctx, tq.Tx, vid, status)
}

func (tq txQueryer) DeleteByID(
	ctx context.Context, vid uuid.UUID,
) error {
	return DeleteByID(ctx, tq.Tx, vid)
}
