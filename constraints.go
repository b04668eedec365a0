// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Constraints represents constraints on the days of an interval such
// as weekends or custom dates to exclude. Custom dates take precedence
// over weekdays and weekends.
type Constraints struct {
	Weekdays bool     // If true, include weekdays
	Weekends bool     // If true, include weekends
	Custom   DateList // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(dc.Custom.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case !dc.Weekdays && !dc.Weekends:
		break
	case dc.Weekdays && !dc.Weekends:
		out.WriteString("weekdays only")
	case !dc.Weekdays && dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given day satisfies the constraints.
// Custom dates are evaluated before weekdays and weekends.
// An empty set Constraints will return true, ie. include all days.
func (dc Constraints) Include(day Date) bool {
	if dc.Custom.Contains(day) {
		return false
	}
	switch wd := day.Weekday(); {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return wd >= time.Monday && wd <= time.Friday
	case dc.Weekends:
		return wd == time.Sunday || wd == time.Saturday
	}
	return true
}

// Empty returns true if the constraints exclude no days.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}

// DaysConstrained returns an iterator over the days in the interval
// that satisfy the supplied constraints. ErrUnbounded is returned for
// an unbounded interval.
func (i Interval) DaysConstrained(dc Constraints) (iter.Seq[Date], error) {
	switch i.kind {
	case KindOneDay:
		return func(yield func(Date) bool) {
			if dc.Include(i.start) {
				yield(i.start)
			}
		}, nil
	case KindBounded:
		return func(yield func(Date) bool) {
			for d := range Between(i.start, i.end.Tomorrow()) {
				if dc.Include(d) && !yield(d) {
					return
				}
			}
		}, nil
	case KindUnbounded:
		return nil, fmt.Errorf("days of %v: %w", i, ErrUnbounded)
	}
	panic(invalidKind(i))
}

// IntervalsConstrained returns the smallest set of intervals that covers
// the days in the interval that satisfy the supplied constraints.
// ErrUnbounded is returned for an unbounded interval.
func (i Interval) IntervalsConstrained(dc Constraints) (List, error) {
	seq, err := i.DaysConstrained(dc)
	if err != nil {
		return nil, err
	}
	var days []Date
	for d := range seq {
		days = append(days, d)
	}
	return GroupSubsequentDays(days), nil
}
