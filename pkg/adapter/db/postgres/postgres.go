// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres provides the PostgreSQL adapter of the repository
// layer, implementing the repo.Pool, repo.Conn, and repo.Tx
// interfaces on top of the GORM framework. The repository
// sub-packages, named like vehiclesrp, implement the corresponding
// core repository interfaces using these types and may depend on the
// GORM framework freely (unlike the core layer packages).
package postgres

import (
	"context"

	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// InitSchema settles the database schema by auto-migrating the given
// row models on a connection taken from the p pool. The row models of
// the repository sub-packages are exposed by their Migratable
// functions; the db init command collects and passes them here.
func InitSchema(
	ctx context.Context, p *Pool, rowModels ...any,
) error {
	return p.Conn(
		ctx, func(ctx context.Context, c repo.Conn) error {
			gdb := c.(*Conn).GORM(ctx)
			return gdb.AutoMigrate(rowModels...)
		},
	)
}
