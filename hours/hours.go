// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hours provides a validated number of hours within a single day.
package hours

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrOutOfRange is returned for values that are less than zero or
	// greater than 24.
	ErrOutOfRange = errors.New("hours must be between 0 and 24")
	// ErrInvalid is returned for text that is not a decimal number.
	ErrInvalid = errors.New("invalid hours")
)

var (
	minHours = decimal.Zero
	maxHours = decimal.NewFromInt(24)
)

// Hours represents a fractional number of hours in the range 0 to 24
// inclusive. The zero value is zero hours.
type Hours struct {
	value decimal.Decimal
}

// New returns the Hours for v.
func New(v decimal.Decimal) (Hours, error) {
	if v.LessThan(minHours) || v.GreaterThan(maxHours) {
		return Hours{}, fmt.Errorf("%v: %w", v, ErrOutOfRange)
	}
	return Hours{value: v}, nil
}

// FromInt returns the Hours for a whole number of hours.
func FromInt(v int) (Hours, error) {
	return New(decimal.NewFromInt(int64(v)))
}

// Parse parses a decimal number of hours, eg. "7.5".
func Parse(val string) (Hours, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(val))
	if err != nil {
		return Hours{}, fmt.Errorf("%q: %w", val, ErrInvalid)
	}
	return New(v)
}

// Value returns the number of hours.
func (h Hours) Value() decimal.Decimal {
	return h.value
}

// Add returns the sum of h and o, ErrOutOfRange is returned if the
// sum exceeds 24 hours.
func (h Hours) Add(o Hours) (Hours, error) {
	return New(h.value.Add(o.value))
}

// Cmp compares h and o and returns -1, 0 or +1.
func (h Hours) Cmp(o Hours) int {
	return h.value.Cmp(o.value)
}

func (h Hours) String() string {
	return h.value.String()
}
