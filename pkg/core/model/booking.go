// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus specifies the lifecycle status of a booking.
// Only bookings with the Active status are live claims on the
// calendar of their vehicle; the other statuses are kept for the
// record but ignored by the availability engine.
type BookingStatus int

// Valid values for the BookingStatus enum.
const (
	BookingStatusInvalid BookingStatus = iota // zero value is invalid

	BookingStatusPending   // reserved, not confirmed yet
	BookingStatusActive    // confirmed; occupies the calendar
	BookingStatusCancelled // terminal; frees the calendar
	BookingStatusCompleted // terminal; vehicle was returned
)

// ErrUnknownBookingStatus indicates that a given string may not be
// parsed as a valid/known booking status.
var ErrUnknownBookingStatus = errors.New("unknown booking status")

// BookingStatusError indicates an invalid booking status value,
// containing the invalid status as an integer.
type BookingStatusError int

// Error implements the error interface, returning a string
// representation of the BookingStatusError.
func (e BookingStatusError) Error() string {
	return fmt.Sprintf("invalid booking status: %d", e)
}

// Validate returns nil if the BookingStatus value is valid. For
// invalid values, an instance of BookingStatusError will be returned.
func (s BookingStatus) Validate() error {
	switch s {
	case BookingStatusPending, BookingStatusActive,
		BookingStatusCancelled, BookingStatusCompleted:
		return nil
	default:
		return BookingStatusError(s)
	}
}

// String converts the BookingStatus enum to a string, helping to
// serialize it for transmission to web clients and for storage.
// Invalid status causes a panic.
func (s BookingStatus) String() string {
	switch s {
	case BookingStatusPending:
		return "pending"
	case BookingStatusActive:
		return "active"
	case BookingStatusCancelled:
		return "cancelled"
	case BookingStatusCompleted:
		return "completed"
	default:
		panic(BookingStatusError(s))
	}
}

// ParseBookingStatus parses the given string and returns a
// BookingStatus. For invalid strings, BookingStatusInvalid and
// ErrUnknownBookingStatus will be returned.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch s {
	case "pending":
		return BookingStatusPending, nil
	case "active":
		return BookingStatusActive, nil
	case "cancelled":
		return BookingStatusCancelled, nil
	case "completed":
		return BookingStatusCompleted, nil
	default:
		return BookingStatusInvalid, ErrUnknownBookingStatus
	}
}

// Booking models a confirmed or historical rental of one vehicle by
// one customer over an inclusive range of calendar dates.
type Booking struct {
	ID         uuid.UUID
	VehicleID  uuid.UUID
	CustomerID uuid.UUID

	CustomerName string

	PickupDate time.Time // inclusive, normalized with Date
	ReturnDate time.Time // inclusive, not before PickupDate

	PickupLocation string
	ReturnLocation string

	TotalCostCents int64

	Status BookingStatus
}

// Range returns the booked window as a DateRange.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.PickupDate, End: b.ReturnDate}
}
