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

// MaintenancesQueryer lists the maintenance record queries which may
// run on a connection or a transaction alike.
type MaintenancesQueryer interface {
	// FindByID resolves one maintenance record by its identifier,
	// returning a cerr.NotFound error if no such record exists.
	FindByID(
		ctx context.Context, mid uuid.UUID,
	) (*model.Maintenance, error)

	// FindByVehicle returns the maintenance history of one vehicle,
	// most recent service date first.
	FindByVehicle(
		ctx context.Context, vid uuid.UUID,
	) ([]model.Maintenance, error)

	// Create persists a new maintenance record.
	Create(ctx context.Context, m *model.Maintenance) error

	// Update overwrites an existing maintenance record, returning a
	// cerr.NotFound error if no such record exists.
	Update(
		ctx context.Context, m *model.Maintenance,
	) (*model.Maintenance, error)

	// DeleteByID removes one maintenance record. Deleting an absent
	// record is not an error.
	DeleteByID(ctx context.Context, mid uuid.UUID) error
}

// MaintenancesConnQueryer is the connection-bound maintenances
// queryer.
type MaintenancesConnQueryer interface {
	MaintenancesQueryer
}

// MaintenancesTxQueryer is the transaction-bound maintenances
// queryer.
type MaintenancesTxQueryer interface {
	MaintenancesQueryer
}

// Maintenances is the maintenance records repository interface,
// binding the maintenance queries to a connection or transaction.
type Maintenances interface {
	Conn(Conn) MaintenancesConnQueryer
	Tx(Tx) MaintenancesTxQueryer
}
