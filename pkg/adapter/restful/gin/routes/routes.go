// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/blocksrp"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/bookingsrp"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/maintsrp"
	"github.com/momeni/rental-fleet/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/availrs"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/bookingsrs"
	"github.com/momeni/rental-fleet/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/momeni/rental-fleet/pkg/core/repo"
	"github.com/momeni/rental-fleet/pkg/core/usecase/availuc"
	"github.com/momeni/rental-fleet/pkg/core/usecase/bookinguc"
	"github.com/momeni/rental-fleet/pkg/core/usecase/fleetuc"
)

// Register instantiates the repositories and use cases of the fleet
// availability system. The p connections pool is passed to the use
// case instances, so they may acquire/release connections and
// transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like availuc and each repository package is named like blocksrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like availrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// Possible errors will be returned after possible wrapping.
func Register(e *gin.Engine, p repo.Pool) error {
	vehiclesRepo := vehiclesrp.New()
	bookingsRepo := bookingsrp.New()
	blocksRepo := blocksrp.New()
	maintsRepo := maintsrp.New()

	avail, err := availuc.New(
		p, vehiclesRepo, bookingsRepo, blocksRepo,
	)
	if err != nil {
		return fmt.Errorf("creating availability use case: %w", err)
	}
	fleet := fleetuc.New(p, vehiclesRepo, maintsRepo)
	bookings := bookinguc.New(p, bookingsRepo)

	r := e.Group("/api/fleet/v1")
	availrs.Register(r, avail)
	vehiclesrs.Register(r, fleet)
	bookingsrs.Register(r, bookings)
	return nil
}
