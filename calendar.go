// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import "time"

var (
	daysBeforeMonth     []int // per month cumulative days in year so [0, 31, 59 etc]
	daysBeforeMonthLeap []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth         []int // days in each month
	daysInMonthLeap     []int

	maxOrdinal int64 // ordinal of LastDate
)

const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	daysBeforeMonth = make([]int, 12)
	daysBeforeMonthLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		daysBeforeMonth[i+1] += daysBeforeMonth[i] + daysInMonth[i]
		daysBeforeMonthLeap[i+1] += daysBeforeMonthLeap[i] + daysInMonthLeap[i]
	}
	maxOrdinal = LastDate.ordinal()
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

func daysBeforeMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysBeforeMonthLeap
	}
	return daysBeforeMonth
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// ordinal returns the number of days since 0001-01-01 in the proleptic
// Gregorian calendar, ie. MinDate has an ordinal of zero. All dates
// after LastDate share the ordinal that follows it.
func (d Date) ordinal() int64 {
	if d > LastDate {
		return maxOrdinal + 1
	}
	y := int64(d.Year() - 1)
	doy := int64(daysBeforeMonthForYear(d.Year())[d.Month()-1] + d.Day() - 1)
	return y*365 + y/4 - y/100 + y/400 + doy
}

// dateFromOrdinal is the inverse of Date.ordinal, ordinals outside of
// the range of MinDate to LastDate are clamped to MinDate and MaxDate.
func dateFromOrdinal(n int64) Date {
	if n <= 0 {
		return MinDate
	}
	if n > maxOrdinal {
		return MaxDate
	}
	n400, n := n/daysPer400Years, n%daysPer400Years
	n100, n := n/daysPer100Years, n%daysPer100Years
	n4, n := n/daysPer4Years, n%daysPer4Years
	n1, n := n/365, n%365
	year := int(n400*400 + n100*100 + n4*4 + n1 + 1)
	if n100 == 4 || n1 == 4 {
		// The last day of a leap year.
		return newDate(year-1, time.December, 31)
	}
	before := daysBeforeMonthForYear(year)
	month := 11
	for month > 0 && int(n) < before[month] {
		month--
	}
	return newDate(year, time.Month(month+1), int(n)-before[month]+1)
}
