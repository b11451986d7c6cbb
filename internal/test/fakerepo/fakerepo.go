// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakerepo provides an in-memory implementation of the
// repo.Pool interface and the repository interfaces, so the use case
// packages can be unit tested without a database instance. The fakes
// reproduce the ordering and filtering semantics of the PostgreSQL
// repository packages, but not their transactional isolation; a test
// which fails in the middle of a transaction should not depend on the
// earlier writes being rolled back unless no write precedes the error.
package fakerepo

import (
	"context"
	"errors"
	"sync"

	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// ErrNoSQL is returned by the Exec and Query methods since the fake
// repositories store their records in Go maps, not SQL tables.
var ErrNoSQL = errors.New("fakerepo: raw SQL is not supported")

// Store holds the in-memory records, shared by the fake pool and the
// fake repositories which are created by the New function.
type Store struct {
	mu sync.Mutex

	vehicles map[string]model.Vehicle
	bookings map[string]model.Booking
	blocks   map[string]model.BlockedPeriod
	maints   map[string]model.Maintenance
}

// New creates an in-memory store and a repo.Pool instance which is
// backed by it.
func New() (*Store, repo.Pool) {
	s := &Store{
		vehicles: make(map[string]model.Vehicle),
		bookings: make(map[string]model.Booking),
		blocks:   make(map[string]model.BlockedPeriod),
		maints:   make(map[string]model.Maintenance),
	}
	return s, &pool{store: s}
}

// AddVehicle seeds one vehicle record.
func (s *Store) AddVehicle(v model.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[v.ID.String()] = v
}

// AddBooking seeds one booking record.
func (s *Store) AddBooking(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID.String()] = b
}

// AddBlockedPeriod seeds one blocked period record.
func (s *Store) AddBlockedPeriod(b model.BlockedPeriod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[b.ID.String()] = b
}

// AddMaintenance seeds one maintenance record.
func (s *Store) AddMaintenance(m model.Maintenance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maints[m.ID.String()] = m
}

type pool struct {
	store *Store
}

func (p *pool) Conn(ctx context.Context, f repo.ConnHandler) error {
	return f(ctx, &conn{store: p.store})
}

func (p *pool) Close() error {
	return nil
}

type conn struct {
	store *Store
}

func (c *conn) IsConn() {}

func (c *conn) Tx(ctx context.Context, f repo.TxHandler) error {
	return f(ctx, &tx{store: c.store})
}

func (c *conn) Exec(
	_ context.Context, _ string, _ ...any,
) (int64, error) {
	return 0, ErrNoSQL
}

func (c *conn) Query(
	_ context.Context, _ string, _ ...any,
) (repo.Rows, error) {
	return nil, ErrNoSQL
}

type tx struct {
	store *Store
}

func (t *tx) IsTx() {}

func (t *tx) Exec(
	_ context.Context, _ string, _ ...any,
) (int64, error) {
	return 0, ErrNoSQL
}

func (t *tx) Query(
	_ context.Context, _ string, _ ...any,
) (repo.Rows, error) {
	return nil, ErrNoSQL
}

// storeOf extracts the shared Store out of a fake connection or
// transaction, panicking on foreign implementations.
func storeOf(q any) *Store {
	switch q := q.(type) {
	case *conn:
		return q.store
	case *tx:
		return q.store
	default:
		panic("fakerepo: unknown queryer implementation")
	}
}
