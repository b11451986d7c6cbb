// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package maintsrp implements the repo.Maintenances repository
// interface, storing the shop visit records in the maintenances table.
package maintsrp

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

func (maints *Repo) Conn(c repo.Conn) repo.MaintenancesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(
	ctx context.Context, mid uuid.UUID,
) (*model.Maintenance, error) {
	return FindByID(ctx, cq.Conn, mid)
}

func (cq connQueryer) FindByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.Maintenance, error) {
	return FindByVehicle(ctx, cq.Conn, vid)
}

func (cq connQueryer) Create(
	ctx context.Context, m *model.Maintenance,
) error {
	return Create(ctx, cq.Conn, m)
}

func (cq connQueryer) Update(
	ctx context.Context, m *model.Maintenance,
) (*model.Maintenance, error) {
	return Update(ctx, cq.Conn, m)
}

func (cq connQueryer) DeleteByID(
	ctx context.Context, mid uuid.UUID,
) error {
	return DeleteByID(ctx, cq.Conn, mid)
}

type txQueryer struct {
	*postgres.Tx
}

func (maints *Repo) Tx(tx repo.Tx) repo.MaintenancesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(
	ctx context.Context, mid uuid.UUID,
) (*model.Maintenance, error) {
	return FindByID(ctx, tq.Tx, mid)
}

func (tq txQueryer) FindByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.Maintenance, error) {
	return FindByVehicle(ctx, tq.Tx, vid)
}

func (tq txQueryer) Create(
	ctx context.Context, m *model.Maintenance,
) error {
	return Create(ctx, tq.Tx, m)
}

func (tq txQueryer) Update(
	ctx context.Context, m *model.Maintenance,
) (*model.Maintenance, error) {
	return Update(ctx, tq.Tx, m)
}

func (tq txQueryer) DeleteByID(
	ctx context.Context, mid uuid.UUID,
) error {
	return DeleteByID(ctx, tq.Tx, mid)
}
