// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"fmt"
	"strings"
	"time"
)

// YearMonth represents a month in a specific year. The year is stored in the
// upper bits and the month in the lower 8 bits to allow for sorting.
type YearMonth uint32

func newYearMonth(year int, month time.Month) YearMonth {
	return YearMonth(uint32(year)<<8 | uint32(month))
}

// NewYearMonth returns the YearMonth for the specified year and month.
func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	if _, err := NewDate(year, month, 1); err != nil {
		return 0, err
	}
	return newYearMonth(year, month), nil
}

// Year returns the year.
func (ym YearMonth) Year() int {
	return int(ym >> 8)
}

// Month returns the month.
func (ym YearMonth) Month() time.Month {
	return time.Month(ym & 0xff)
}

// FirstDay returns the first day of the month.
func (ym YearMonth) FirstDay() Date {
	return newDate(ym.Year(), ym.Month(), 1)
}

// LastDay returns the last day of the month.
func (ym YearMonth) LastDay() Date {
	return newDate(ym.Year(), ym.Month(), DaysInMonth(ym.Year(), ym.Month()))
}

// Next returns the following month, December 9999 is returned unchanged.
func (ym YearMonth) Next() YearMonth {
	year, month := ym.Year(), ym.Month()
	switch {
	case month < time.December:
		return newYearMonth(year, month+1)
	case year < maxYear:
		return newYearMonth(year+1, time.January)
	}
	return ym
}

// String returns the month in ISO 8601 format, ie. YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year(), ym.Month())
}

// Parse parses a month in ISO 8601 format, ie. YYYY-MM.
func (ym *YearMonth) Parse(val string) error {
	t, err := time.Parse("2006-01", strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", val, ErrInvalidDate)
	}
	nym, err := NewYearMonth(t.Year(), t.Month())
	if err != nil {
		return err
	}
	*ym = nym
	return nil
}

// monthsBetween returns all of the months from from to to inclusive.
func monthsBetween(from, to YearMonth) []YearMonth {
	var months []YearMonth
	for ym := from; ym <= to; ym = ym.Next() {
		months = append(months, ym)
		if ym == to {
			break
		}
	}
	return months
}
