// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"slices"
)

// Interval returns the interval from the first to the last day of the
// month.
func (ym YearMonth) Interval() Interval {
	return newInterval(ym.FirstDay(), ym.LastDay())
}

// MonthInterval returns the interval covering every day of ym.
func MonthInterval(ym YearMonth) Interval {
	return ym.Interval()
}

// MonthIntervals returns the smallest set of intervals that covers every
// day of the supplied months.
func MonthIntervals(months []YearMonth) List {
	intervals := make([]Interval, 0, len(months))
	for _, ym := range months {
		intervals = append(intervals, ym.Interval())
	}
	return Merge(intervals)
}

// MonthsWithin returns the months touched by the interval.
func MonthsWithin(i Interval) ([]YearMonth, error) {
	return i.Months()
}

// MonthsWithinAll returns the distinct months touched by any of the
// supplied intervals in ascending order.
func MonthsWithinAll(intervals []Interval) ([]YearMonth, error) {
	var months []YearMonth
	for _, r := range intervals {
		m, err := r.Months()
		if err != nil {
			return nil, err
		}
		months = append(months, m...)
	}
	slices.Sort(months)
	return slices.Compact(months), nil
}
