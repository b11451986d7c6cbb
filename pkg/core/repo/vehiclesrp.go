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

// VehiclesQueryer lists the vehicle catalog queries which may run on
// a connection or a transaction alike.
type VehiclesQueryer interface {
	// FindByID resolves one vehicle by its identifier, returning a
	// cerr.NotFound error if no such vehicle exists.
	FindByID(ctx context.Context, vid uuid.UUID) (*model.Vehicle, error)

	// FindAll returns the whole catalog ordered by licence plate.
	FindAll(ctx context.Context) ([]model.Vehicle, error)

	// Create registers a new vehicle.
	Create(ctx context.Context, v *model.Vehicle) error

	// Update overwrites the mutable fields of an existing vehicle,
	// returning a cerr.NotFound error if no such vehicle exists.
	Update(ctx context.Context, v *model.Vehicle) (*model.Vehicle, error)

	// UpdateStatus sets the categorical status of one vehicle,
	// returning a cerr.NotFound error if no such vehicle exists.
	UpdateStatus(
		ctx context.Context, vid uuid.UUID, status model.VehicleStatus,
	) (*model.Vehicle, error)

	// DeleteByID removes one vehicle record. Deleting an absent
	// vehicle is not an error.
	DeleteByID(ctx context.Context, vid uuid.UUID) error
}

// VehiclesConnQueryer is the connection-bound vehicles queryer.
type VehiclesConnQueryer interface {
	VehiclesQueryer
}

// VehiclesTxQueryer is the transaction-bound vehicles queryer. The
// LockByID method is only meaningful within a transaction, hence, it
// is not offered by the connection-bound variant.
type VehiclesTxQueryer interface {
	VehiclesQueryer

	// LockByID resolves one vehicle like FindByID while acquiring a
	// row-level write lock which is held until the end of the ongoing
	// transaction. It serializes the check-then-write sequences which
	// compete over the calendar of one vehicle.
	LockByID(ctx context.Context, vid uuid.UUID) (*model.Vehicle, error)
}

// Vehicles is the vehicle catalog repository interface, binding the
// vehicles queries to a connection or transaction.
type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
