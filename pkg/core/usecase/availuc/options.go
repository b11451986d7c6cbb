// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package availuc

import (
	"errors"
	"time"
)

// Option is a functional option for the availability use case.
type Option func(uc *UseCase) error

// WithClock option configures an availability UseCase instance to
// take the current moment from the given clock function instead of
// the system clock. The engine only looks at the calendar date of the
// returned moment. This option may be passed to the New() function;
// it keeps the date-sensitive policies (future-only blocks, expiry of
// blocked periods, the today projections) deterministic in tests.
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCase) error {
		if clock == nil {
			return errors.New("clock function may not be nil")
		}
		if uc.clock != nil {
			return errors.New("clock is already configured")
		}
		uc.clock = clock
		return nil
	}
}
