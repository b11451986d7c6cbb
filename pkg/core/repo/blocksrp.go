// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/model"
)

// BlockedPeriodsQueryer lists the blocked periods store queries which
// may run on a connection or a transaction alike. All listing methods
// order their result by the start date (and identifier, as the
// tie-breaker).
type BlockedPeriodsQueryer interface {
	// FindByVehicle returns all blocked periods of one vehicle,
	// expired ones included.
	FindByVehicle(
		ctx context.Context, vid uuid.UUID,
	) ([]model.BlockedPeriod, error)

	// FindOverlapping returns the blocked periods of one vehicle
	// whose window intersects the [start, end] window, comparing the
	// inclusive date boundaries, that is, a period which merely
	// touches the queried window at a shared boundary date is
	// reported as well (both days are occupied days).
	FindOverlapping(
		ctx context.Context, vid uuid.UUID, start, end time.Time,
	) ([]model.BlockedPeriod, error)

	// FindActive returns all blocked periods which are not expired
	// relative to the today date, i.e., their EndDate is today or
	// later. Expired periods are retained in the store but excluded
	// here by the date filter.
	FindActive(
		ctx context.Context, today time.Time,
	) ([]model.BlockedPeriod, error)

	// Create persists a new blocked period.
	Create(ctx context.Context, b *model.BlockedPeriod) error

	// DeleteByVehicle removes all blocked periods of one vehicle,
	// returning the number of removed records. Zero is not an error.
	DeleteByVehicle(ctx context.Context, vid uuid.UUID) (int64, error)

	// DeleteByID removes one blocked period record, returning the
	// number of removed records. Zero is not an error.
	DeleteByID(ctx context.Context, bid uuid.UUID) (int64, error)
}

// BlockedPeriodsConnQueryer is the connection-bound blocked periods
// queryer.
type BlockedPeriodsConnQueryer interface {
	BlockedPeriodsQueryer
}

// BlockedPeriodsTxQueryer is the transaction-bound blocked periods
// queryer.
type BlockedPeriodsTxQueryer interface {
	BlockedPeriodsQueryer
}

// BlockedPeriods is the blocked periods store repository interface,
// binding the blocked periods queries to a connection or transaction.
type BlockedPeriods interface {
	Conn(Conn) BlockedPeriodsConnQueryer
	Tx(Tx) BlockedPeriodsTxQueryer
}
