// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookingsrp implements the repo.Bookings repository
// interface, storing the rental bookings in the bookings table.
package bookingsrp

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

func (bookings *Repo) Conn(c repo.Conn) repo.BookingsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) FindByID(
	ctx context.Context, bid uuid.UUID,
) (*model.Booking, error) {
	return FindByID(ctx, cq.Conn, bid)
}

func (cq connQueryer) FindAll(
	ctx context.Context,
) ([]model.Booking, error) {
	return FindAll(ctx, cq.Conn)
}

func (cq connQueryer) FindByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.Booking, error) {
	return FindByVehicle(ctx, cq.Conn, vid)
}

func (cq connQueryer) FindActiveByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.Booking, error) {
	return FindActiveByVehicle(ctx, cq.Conn, vid)
}

func (cq connQueryer) FindByCustomer(
	ctx context.Context, cid uuid.UUID,
) ([]model.Booking, error) {
	return FindByCustomer(ctx, cq.Conn, cid)
}

func (cq connQueryer) Create(
	ctx context.Context, b *model.Booking,
) error {
	return Create(ctx, cq.Conn, b)
}

func (cq connQueryer) Update(
	ctx context.Context, b *model.Booking,
) (*model.Booking, error) {
	return Update(ctx, cq.Conn, b)
}

func (cq connQueryer) DeleteByID(
	ctx context.Context, bid uuid.UUID,
) error {
	return DeleteByID(ctx, cq.Conn, bid)
}

type txQueryer struct {
	*postgres.Tx
}

func (bookings *Repo) Tx(tx repo.Tx) repo.BookingsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) FindByID(
	ctx context.Context, bid uuid.UUID,
) (*model.Booking, error) {
	return FindByID(ctx, tq.Tx, bid)
}

func (tq txQueryer) FindAll(
	ctx context.Context,
) ([]model.Booking, error) {
	return FindAll(ctx, tq.Tx)
}

func (tq txQueryer) FindByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.Booking, error) {
	return FindByVehicle(ctx, tq.Tx, vid)
}

func (tq txQueryer) FindActiveByVehicle(
	ctx context.Context, vid uuid.UUID,
) ([]model.Booking, error) {
	return FindActiveByVehicle(ctx, tq.Tx, vid)
}

func (tq txQueryer) FindByCustomer(
	ctx context.Context, cid uuid.UUID,
) ([]model.Booking, error) {
	return FindByCustomer(ctx, tq.Tx, cid)
}

func (tq txQueryer) Create(
	ctx context.Context, b *model.Booking,
) error {
	return Create(ctx, tq.Tx, b)
}

func (tq txQueryer) Update(
	ctx context.Context, b *model.Booking,
) (*model.Booking, error) {
	return Update(ctx, tq.Tx, b)
}

func (tq txQueryer) DeleteByID(
	ctx context.Context, bid uuid.UUID,
) error {
	return DeleteByID(ctx, tq.Tx, bid)
}
