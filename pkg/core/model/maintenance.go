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

// MaintenanceStatus specifies the lifecycle status of a maintenance
// record. A Pending record pulls its vehicle out of the fleet by
// setting the vehicle status to Maintenance; a Completed record
// returns the vehicle to the Available status.
type MaintenanceStatus int

// Valid values for the MaintenanceStatus enum.
const (
	MaintenanceStatusInvalid MaintenanceStatus = iota // zero is invalid

	MaintenanceStatusPending
	MaintenanceStatusCompleted
)

// ErrUnknownMaintenanceStatus indicates that a given string may not
// be parsed as a valid/known maintenance status.
var ErrUnknownMaintenanceStatus = errors.New(
	"unknown maintenance status",
)

// MaintenanceStatusError indicates an invalid maintenance status
// value, containing the invalid status as an integer.
type MaintenanceStatusError int

// Error implements the error interface, returning a string
// representation of the MaintenanceStatusError.
func (e MaintenanceStatusError) Error() string {
	return fmt.Sprintf("invalid maintenance status: %d", e)
}

// Validate returns nil if the MaintenanceStatus value is valid. For
// invalid values, an instance of MaintenanceStatusError is returned.
func (s MaintenanceStatus) Validate() error {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusCompleted:
		return nil
	default:
		return MaintenanceStatusError(s)
	}
}

// String converts the MaintenanceStatus enum to a string. Invalid
// status causes a panic.
func (s MaintenanceStatus) String() string {
	switch s {
	case MaintenanceStatusPending:
		return "pending"
	case MaintenanceStatusCompleted:
		return "completed"
	default:
		panic(MaintenanceStatusError(s))
	}
}

// ParseMaintenanceStatus parses the given string and returns a
// MaintenanceStatus. For invalid strings, MaintenanceStatusInvalid
// and ErrUnknownMaintenanceStatus will be returned.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch s {
	case "pending":
		return MaintenanceStatusPending, nil
	case "completed":
		return MaintenanceStatusCompleted, nil
	default:
		return MaintenanceStatusInvalid, ErrUnknownMaintenanceStatus
	}
}

// Maintenance models one shop visit of a vehicle.
type Maintenance struct {
	ID        uuid.UUID
	VehicleID uuid.UUID

	MaintenanceDate time.Time // when the issue was logged
	ServiceDate     time.Time // when the work is/was scheduled

	MechanicName string
	Issue        string
	CostCents    int64

	Status MaintenanceStatus
}
