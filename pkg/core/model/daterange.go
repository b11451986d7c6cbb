// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of all calendar dates in this system.
const DateLayout = "2006-01-02"

// Date normalizes a moment in time to its calendar date, that is,
// the midnight of the same day in the UTC timezone. All date fields
// of the core models are expected to be normalized with this function
// before being stored or compared, so two dates may be compared with
// the time.Time comparison methods directly.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a string with the DateLayout format, returning the
// corresponding normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}

// Today returns the current calendar date (normalized to the UTC
// midnight). Use cases which need a deterministic clock should accept
// a clock function instead of calling Today directly.
func Today() time.Time {
	return Date(time.Now())
}

// DateRange represents an inclusive range of calendar dates, such as
// the pickup/return dates of a booking or the start/end dates of an
// administrative blocked period. Both boundaries belong to the range,
// hence, a single-day range has Start equal to End.
type DateRange struct {
	Start time.Time // first day of the range
	End   time.Time // last day of the range, not before Start
}

// NewDateRange creates a DateRange after normalizing both boundaries
// with the Date function.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Date(start), End: Date(end)}
}

// Validate returns nil if the range boundaries are ordered properly,
// that is, Start is not after End. The returned error (if any)
// describes the malformed boundaries.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf(
			"start date %s is after end date %s",
			r.Start.Format(DateLayout), r.End.Format(DateLayout),
		)
	}
	return nil
}

// Overlaps returns true if the r and o ranges have a positive-length
// intersection. The comparison is strict on both boundaries, so two
// ranges which merely touch at a shared boundary date, e.g., one
// ending on a day and another starting on the same day, are not
// considered overlapping. This rule permits a back-to-back same-day
// turnover where one booking returns a vehicle in the morning and
// another picks it up later that day.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && r.End.After(o.Start)
}

// Contains returns true if the d date falls within the r range,
// boundaries included.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// AddDays returns the date which is n days after the t date, keeping
// the normalized representation.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
