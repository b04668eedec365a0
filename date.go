// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dayrange provides an algebra over intervals of calendar days:
// containment, intersection, merging, subtraction, gap detection,
// splitting and grouping of closed, possibly unbounded, date intervals.
package dayrange

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Date represents a calendar day. The year, month and day are packed
// into the upper 16, middle 8 and lower 8 bits respectively so that
// Date values are ordered chronologically and may be compared and
// sorted directly. The zero value is not a valid Date and is used to
// represent a missing date.
type Date uint32

const (
	minYear = 1
	maxYear = 9999
)

const (
	// MinDate is the earliest supported Date, 0001-01-01.
	MinDate Date = minYear<<16 | 1<<8 | 1

	// LastDate is the latest supported Date, 9999-12-31.
	LastDate Date = maxYear<<16 | 12<<8 | 31

	// MaxDate is the end of every unbounded interval. It is ordered after
	// every other Date, is not a calendar day and cannot be parsed. It is
	// never incremented or decremented, see Tomorrow and Yesterday.
	MaxDate Date = math.MaxUint32
)

func newDate(year int, month time.Month, day int) Date {
	return Date(uint32(year)<<16 | uint32(month)<<8 | uint32(day))
}

// NewDate returns the Date for the specified year, month and day.
// The year must be in the range 1-9999 and the day must be valid
// for the month and year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year %d is outside of %d-%d: %w", year, minYear, maxYear, ErrInvalidDate)
	}
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("invalid month: %d: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("invalid day for %v %v: %d: %w", month, year, day, ErrInvalidDate)
	}
	return newDate(year, month, day), nil
}

// DateFromTime returns the Date for the year, month and day of t in
// its own location.
func DateFromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Year returns the year.
func (d Date) Year() int {
	return int(d >> 16)
}

// Month returns the month.
func (d Date) Month() time.Month {
	return time.Month(d >> 8 & 0xff)
}

// Day returns the day of the month.
func (d Date) Day() int {
	return int(d & 0xff)
}

// IsZero returns true for the zero Date.
func (d Date) IsZero() bool {
	return d == 0
}

// YearMonth returns the YearMonth that contains d.
func (d Date) YearMonth() YearMonth {
	return newYearMonth(d.Year(), d.Month())
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	// 0001-01-01 is a Monday.
	return time.Weekday((d.ordinal() + 1) % 7)
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Less implements cloudeng.io/algo/container/heap.Value.
func (d Date) Less(x Date) bool {
	return d < x
}

// String returns the date in ISO 8601 format, ie. YYYY-MM-DD, or ∞
// for MaxDate.
func (d Date) String() string {
	if d == MaxDate {
		return "∞"
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// Tomorrow returns the day after d. The day after LastDate is
// 10000-01-01, which only serves as the exclusive end of intervals
// that end on LastDate, and the day after that is MaxDate. MaxDate is
// returned unchanged.
func (d Date) Tomorrow() Date {
	switch {
	case d.IsZero():
		return d
	case d > LastDate:
		return MaxDate
	}
	year, month, day := d.Year(), d.Month(), d.Day()
	if day < daysInMonthForYear(year)[month-1] {
		return d + 1
	}
	if month < time.December {
		return newDate(year, month+1, 1)
	}
	return newDate(year+1, time.January, 1)
}

// Yesterday returns the day before d. MaxDate and MinDate are returned
// unchanged.
func (d Date) Yesterday() Date {
	if d == MaxDate || d == MinDate || d.IsZero() {
		return d
	}
	year, month, day := d.Year(), d.Month(), d.Day()
	if day > 1 {
		return d - 1
	}
	if month > time.January {
		return newDate(year, month-1, DaysInMonth(year, month-1))
	}
	return newDate(year-1, time.December, 31)
}

// addDays returns the date n days after (or before for negative n) d,
// clamped to MinDate and MaxDate. Dates after LastDate are returned
// unchanged.
func (d Date) addDays(n int) Date {
	if d > LastDate {
		return d
	}
	return dateFromOrdinal(d.ordinal() + int64(n))
}

// ParseDate parses a date in ISO 8601 calendar date format, ie. YYYY-MM-DD.
func ParseDate(val string) (Date, error) {
	var d Date
	if err := d.Parse(val); err != nil {
		return 0, err
	}
	return d, nil
}

// Parse parses a date in ISO 8601 calendar date format, ie. YYYY-MM-DD.
func (d *Date) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected YYYY-MM-DD: %w", ErrMissingDate)
	}
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", val, ErrInvalidDate)
	}
	nd, err := DateFromTime(t)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", val, err)
	}
	*d = nd
	return nil
}
