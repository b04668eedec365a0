// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import "cloudeng.io/errors"

var (
	// ErrInvalidDate is returned for dates that cannot be parsed or that
	// are outside of the supported range of MinDate to LastDate.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingDate is returned when the zero Date is supplied where
	// a date is required.
	ErrMissingDate = errors.New("missing date")

	// ErrInvalidInterval is returned when an interval's start date is
	// after its end date.
	ErrInvalidInterval = errors.New("interval start must not be after its end")

	// ErrUnbounded is returned by operations whose result would be infinite
	// when applied to an unbounded interval, for example enumerating its days.
	ErrUnbounded = errors.New("operation not supported on an unbounded interval")

	// ErrUnsupportedUnit is returned for a Unit that is not one of the
	// predefined calendar units.
	ErrUnsupportedUnit = errors.New("unsupported calendar unit")
)
