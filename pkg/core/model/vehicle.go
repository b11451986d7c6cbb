// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// VehicleStatus specifies the categorical lifecycle status of a
// vehicle. It is independent of the derived occupancy view which is
// computed from the bookings and blocked periods; for example, a
// vehicle may be categorically Available while an administrative block
// occupies part of its calendar. Although this enum is numeric, it is
// (de)serialized as a string for readability in the adapter layer.
type VehicleStatus int

// Valid values for the VehicleStatus enum.
const (
	VehicleStatusInvalid VehicleStatus = iota // zero value is invalid

	VehicleStatusAvailable   // in the rentable fleet
	VehicleStatusRented      // handed over to a customer
	VehicleStatusMaintenance // in the shop; vetoes all availability
	VehicleStatusUnavailable // withdrawn from the fleet
)

// ErrUnknownVehicleStatus indicates that a given string may not be
// parsed as a valid/known vehicle status. The caller of Parse already
// knows about the invalid status string, hence, it is not repeated in
// the error itself.
var ErrUnknownVehicleStatus = errors.New("unknown vehicle status")

// VehicleStatusError indicates an invalid vehicle status value,
// containing the invalid status as an integer.
type VehicleStatusError int

// Error implements the error interface, returning a string
// representation of the VehicleStatusError.
func (e VehicleStatusError) Error() string {
	return fmt.Sprintf("invalid vehicle status: %d", e)
}

// Validate returns nil if the VehicleStatus value is valid. For
// invalid values, an instance of VehicleStatusError will be returned.
func (s VehicleStatus) Validate() error {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented,
		VehicleStatusMaintenance, VehicleStatusUnavailable:
		return nil
	default:
		return VehicleStatusError(s)
	}
}

// String converts the VehicleStatus enum to a string, helping to
// serialize it for transmission to web clients and for storage.
// Invalid status causes a panic.
func (s VehicleStatus) String() string {
	switch s {
	case VehicleStatusAvailable:
		return "available"
	case VehicleStatusRented:
		return "rented"
	case VehicleStatusMaintenance:
		return "maintenance"
	case VehicleStatusUnavailable:
		return "unavailable"
	default:
		panic(VehicleStatusError(s))
	}
}

// ParseVehicleStatus parses the given string and returns a
// VehicleStatus, helping to deserialize it when reading a REST API
// request or a database row. For invalid strings,
// VehicleStatusInvalid and ErrUnknownVehicleStatus will be returned.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch s {
	case "available":
		return VehicleStatusAvailable, nil
	case "rented":
		return VehicleStatusRented, nil
	case "maintenance":
		return VehicleStatusMaintenance, nil
	case "unavailable":
		return VehicleStatusUnavailable, nil
	default:
		return VehicleStatusInvalid, ErrUnknownVehicleStatus
	}
}

// Vehicle models a rentable asset of the fleet. The descriptive fields
// are immutable after registration, while the Status field is mutated
// by the booking and maintenance write paths and read by the
// availability engine as the ground truth for categorical exclusion.
// Money amounts are kept as cents in order to avoid floating point
// rounding issues.
type Vehicle struct {
	ID           uuid.UUID
	LicensePlate string
	Make         string
	Model        string
	Year         int
	Colour       string

	MileageLimitPerDay int64 // kilometers; zero means unlimited
	WeeklyRateCents    int64

	Status VehicleStatus
}

// Description returns a human readable description of the vehicle
// such as "2021 Toyota Corolla", as reported alongside blocked
// periods.
func (v *Vehicle) Description() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
