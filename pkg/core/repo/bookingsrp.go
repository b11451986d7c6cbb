// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/model"
)

// BookingsQueryer lists the booking store queries which may run on a
// connection or a transaction alike. All listing methods order their
// result by the pickup date (and identifier, as the tie-breaker), so
// "the first booking" is a deterministic notion for the callers.
type BookingsQueryer interface {
	// FindByID resolves one booking by its identifier, returning a
	// cerr.NotFound error if no such booking exists.
	FindByID(ctx context.Context, bid uuid.UUID) (*model.Booking, error)

	// FindAll returns all bookings.
	FindAll(ctx context.Context) ([]model.Booking, error)

	// FindByVehicle returns all bookings of one vehicle, regardless
	// of their status.
	FindByVehicle(
		ctx context.Context, vid uuid.UUID,
	) ([]model.Booking, error)

	// FindActiveByVehicle returns the bookings of one vehicle which
	// have the active status, that is, the live claims on its
	// calendar.
	FindActiveByVehicle(
		ctx context.Context, vid uuid.UUID,
	) ([]model.Booking, error)

	// FindByCustomer returns all bookings of one customer.
	FindByCustomer(
		ctx context.Context, cid uuid.UUID,
	) ([]model.Booking, error)

	// Create persists a new booking.
	Create(ctx context.Context, b *model.Booking) error

	// Update overwrites an existing booking, returning a
	// cerr.NotFound error if no such booking exists.
	Update(ctx context.Context, b *model.Booking) (*model.Booking, error)

	// DeleteByID removes one booking record. Deleting an absent
	// booking is not an error.
	DeleteByID(ctx context.Context, bid uuid.UUID) error
}

// BookingsConnQueryer is the connection-bound bookings queryer.
type BookingsConnQueryer interface {
	BookingsQueryer
}

// BookingsTxQueryer is the transaction-bound bookings queryer.
type BookingsTxQueryer interface {
	BookingsQueryer
}

// Bookings is the booking store repository interface, binding the
// bookings queries to a connection or transaction.
type Bookings interface {
	Conn(Conn) BookingsConnQueryer
	Tx(Tx) BookingsTxQueryer
}
