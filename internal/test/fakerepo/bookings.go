// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fakerepo

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// Bookings is the in-memory implementation of repo.Bookings.
type Bookings struct {
}

// NewBookings instantiates an in-memory bookings repository.
func NewBookings() *Bookings {
	return &Bookings{}
}

type bookingsQueryer struct {
	store *Store
}

func (bookings *Bookings) Conn(
	c repo.Conn,
) repo.BookingsConnQueryer {
	return bookingsQueryer{store: storeOf(c)}
}

func (bookings *Bookings) Tx(tx repo.Tx) repo.BookingsTxQueryer {
	return bookingsQueryer{store: storeOf(tx)}
}

func sortBookings(bs []model.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].PickupDate.Equal(bs[j].PickupDate) {
			return bs[i].PickupDate.Before(bs[j].PickupDate)
		}
		return bs[i].ID.String() < bs[j].ID.String()
	})
}

func (q bookingsQueryer) FindByID(
	_ context.Context, bid uuid.UUID,
) (*model.Booking, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	b, ok := q.store.bookings[bid.String()]
	if !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no booking with id %s", bid),
		)
	}
	return &b, nil
}

func (q bookingsQueryer) FindAll(
	_ context.Context,
) ([]model.Booking, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	bs := make([]model.Booking, 0, len(q.store.bookings))
	for _, b := range q.store.bookings {
		bs = append(bs, b)
	}
	sortBookings(bs)
	return bs, nil
}

func (q bookingsQueryer) FindByVehicle(
	_ context.Context, vid uuid.UUID,
) ([]model.Booking, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var bs []model.Booking
	for _, b := range q.store.bookings {
		if b.VehicleID == vid {
			bs = append(bs, b)
		}
	}
	sortBookings(bs)
	return bs, nil
}

func (q bookingsQueryer) FindActiveByVehicle(
	_ context.Context, vid uuid.UUID,
) ([]model.Booking, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var bs []model.Booking
	for _, b := range q.store.bookings {
		if b.VehicleID == vid &&
			b.Status == model.BookingStatusActive {
			bs = append(bs, b)
		}
	}
	sortBookings(bs)
	return bs, nil
}

func (q bookingsQueryer) FindByCustomer(
	_ context.Context, cid uuid.UUID,
) ([]model.Booking, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var bs []model.Booking
	for _, b := range q.store.bookings {
		if b.CustomerID == cid {
			bs = append(bs, b)
		}
	}
	sortBookings(bs)
	return bs, nil
}

func (q bookingsQueryer) Create(
	_ context.Context, b *model.Booking,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	q.store.bookings[b.ID.String()] = *b
	return nil
}

func (q bookingsQueryer) Update(
	_ context.Context, b *model.Booking,
) (*model.Booking, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	if _, ok := q.store.bookings[b.ID.String()]; !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no booking with id %s", b.ID),
		)
	}
	q.store.bookings[b.ID.String()] = *b
	bb := *b
	return &bb, nil
}

func (q bookingsQueryer) DeleteByID(
	_ context.Context, bid uuid.UUID,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	delete(q.store.bookings, bid.String())
	return nil
}
