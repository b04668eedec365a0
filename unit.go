// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"fmt"
	"time"
)

// Unit represents a calendar unit used to split intervals.
type Unit int

const (
	// Days is a single calendar day.
	Days Unit = iota + 1
	// Weeks is seven consecutive days.
	Weeks
	// Months is a calendar month.
	Months
	// Years is a calendar year.
	Years
	// Decades is ten calendar years.
	Decades
	// Centuries is one hundred calendar years.
	Centuries
	// Millennia is one thousand calendar years.
	Millennia
)

var unitNames = []string{"days", "weeks", "months", "years", "decades", "centuries", "millennia"}

func (u Unit) valid() bool {
	return u >= Days && u <= Millennia
}

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u-1]
}

// StartOf returns the first day of the unit that contains d, for example:
//
//	Days       1951-02-11 -> 1951-02-11
//	Weeks      1951-02-11 -> 1951-02-05 (Monday)
//	Months     1951-02-11 -> 1951-02-01
//	Years      1951-02-11 -> 1951-01-01
//	Decades    1951-02-11 -> 1950-01-01
//	Centuries  1951-02-11 -> 1900-01-01
//	Millennia  1951-02-11 -> 1000-01-01
//
// Decades, centuries and millennia that start before year 1 are clamped
// to MinDate.
func StartOf(u Unit, d Date) (Date, error) {
	if d.IsZero() {
		return 0, ErrMissingDate
	}
	if err := inCalendar(d); err != nil {
		return 0, err
	}
	switch u {
	case Days:
		return d, nil
	case Weeks:
		// Monday is day 0 of the ISO week.
		return d.addDays(-((int(d.Weekday()) + 6) % 7)), nil
	case Months:
		return newDate(d.Year(), d.Month(), 1), nil
	case Years:
		return startOfYears(d, 1), nil
	case Decades:
		return startOfYears(d, 10), nil
	case Centuries:
		return startOfYears(d, 100), nil
	case Millennia:
		return startOfYears(d, 1000), nil
	}
	return 0, fmt.Errorf("%v: %w", u, ErrUnsupportedUnit)
}

func startOfYears(d Date, years int) Date {
	return newDate(max((d.Year()/years)*years, minYear), time.January, 1)
}

// next returns the boundary one unit after boundary, which must be the
// first day of a month for Months and the first day of a year for
// Years and longer units. Boundaries beyond LastDate are returned as
// MaxDate.
func (u Unit) next(boundary Date) Date {
	switch u {
	case Days:
		return boundary.Tomorrow()
	case Weeks:
		return boundary.addDays(7)
	case Months:
		ym := boundary.YearMonth()
		if ym.Next() == ym {
			return MaxDate
		}
		return ym.Next().FirstDay()
	case Years:
		return addYears(boundary, 1)
	case Decades:
		return addYears(boundary, 10)
	case Centuries:
		return addYears(boundary, 100)
	case Millennia:
		return addYears(boundary, 1000)
	}
	panic("unreachable")
}

func addYears(boundary Date, n int) Date {
	year := boundary.Year() + n
	if year > maxYear {
		return MaxDate
	}
	return newDate(year, time.January, 1)
}
