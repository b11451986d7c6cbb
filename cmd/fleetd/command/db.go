// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/rental-fleet/pkg/adapter/config"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/blocksrp"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/bookingsrp"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/maintsrp"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/momeni/rental-fleet/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init sub-command settles the database
schema by creating the missing tables, columns, and indices of all
repository packages.`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Settle the database schema",
	RunE:  initSchema,
}

func initSchema(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	pp := p.(*postgres.Pool)
	err = postgres.InitSchema(
		ctx, pp,
		vehiclesrp.Migratable(),
		bookingsrp.Migratable(),
		blocksrp.Migratable(),
		maintsrp.Migratable(),
	)
	if err != nil {
		return fmt.Errorf("settling database schema: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
