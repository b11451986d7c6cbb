// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"

	"github.com/momeni/rental-fleet/pkg/adapter/config/settings"
)

func ExampleDuration() {
	var d settings.Duration
	fmt.Println(d.UnmarshalText([]byte("2h3m0s")))
	fmt.Println(*d.Marshal())
	// Output:
	// <nil>
	// 2h3m
}

func ExampleNil2Zero() {
	var recovery *bool
	settings.Nil2Zero(&recovery)
	fmt.Println(*recovery)
	// Output:
	// false
}

func ExampleVerifyRange() {
	v, minb, maxb := 7, 3, 5
	value := &v
	err := settings.VerifyRange(&value, &minb, &maxb)
	fmt.Println(err)
	fmt.Println(*value)
	// Output:
	// value is greater than max
	// 5
}

func ExampleVerifyRange_nilValue() {
	minb, maxb := 3, 5
	var value *int
	err := settings.VerifyRange(&value, &minb, &maxb)
	fmt.Println(err, value)
	// Output:
	// <nil> <nil>
}
