// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// BlockedPeriod models an administrator-imposed exclusion window on
// the calendar of one vehicle, e.g., for an inspection or an
// off-boarding preparation. The vehicle is referenced by value, not by
// an owning relation, so a blocked period may outlive its vehicle
// record. Blocked periods are never deleted on expiry; an expired
// period (EndDate in the past) is excluded from the active views by a
// date filter at query time.
//
// The availability engine guarantees that no two blocked periods of
// the same vehicle overlap, rejecting conflicting creation requests.
type BlockedPeriod struct {
	ID        uuid.UUID
	VehicleID uuid.UUID

	StartDate time.Time // inclusive, normalized with Date
	EndDate   time.Time // inclusive, not before StartDate

	Reason      string
	CreatedDate time.Time
}

// Range returns the blocked window as a DateRange.
func (b *BlockedPeriod) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// Expired returns true if the blocked period lies entirely in the
// past relative to the today date, that is, its EndDate has passed.
func (b *BlockedPeriod) Expired(today time.Time) bool {
	return b.EndDate.Before(today)
}
