// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// CurrentBooking summarizes the booking which currently occupies a
// vehicle, as reported by the fleet availability projection.
type CurrentBooking struct {
	Customer  string
	StartDate time.Time
	EndDate   time.Time
}

// VehicleAvailability is the per-vehicle availability projection:
// the vehicle summary, its current occupant (if any), and the first
// date on which the vehicle is projected to be free again. When no
// active booking and no unexpired blocked period exists, NextAvailable
// is the today date itself.
type VehicleAvailability struct {
	ID           uuid.UUID
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Status       VehicleStatus

	CurrentBooking *CurrentBooking
	NextAvailable  time.Time
}

// AvailabilityStats aggregates the fleet-wide availability counters.
// Total, Available, Booked, and Maintenance partition the catalog by
// the categorical vehicle status, while Blocked counts the currently
// active blocked period records (not distinct vehicles). The four
// non-total counters are therefore not guaranteed to sum up to Total;
// this is the intended reporting behavior, not an accounting bug.
type AvailabilityStats struct {
	Total       int64
	Available   int64
	Booked      int64
	Maintenance int64
	Blocked     int64
}

// BlockedPeriodInfo pairs a blocked period with a human readable
// description of its vehicle for the administrative listing. The
// description stays empty if the vehicle record cannot be resolved.
type BlockedPeriodInfo struct {
	BlockedPeriod

	VehicleDescription string
}
