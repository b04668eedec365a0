// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// SplitByUnit splits the interval at every unit boundary that falls
// after its start and on or before its end. Boundaries are counted in
// whole units from January 1st of the year that the interval starts in,
// so that for example splitting [2023-06-01,2045-01-01] by Decades
// yields:
//
//	[2023-06-01,2032-12-31], [2033-01-01,2042-12-31], [2043-01-01,2045-01-01]
//
// A one day interval is returned unchanged and ErrUnbounded is returned
// for an unbounded interval.
func (i Interval) SplitByUnit(u Unit) (List, error) {
	if !u.valid() {
		return nil, fmt.Errorf("%v: %w", u, ErrUnsupportedUnit)
	}
	switch i.kind {
	case KindOneDay:
		return List{i}, nil
	case KindBounded:
		var out List
		from := i.start
		anchor := newDate(i.start.Year(), time.January, 1)
		for boundary := u.next(anchor); boundary <= i.end; boundary = u.next(boundary) {
			if boundary <= i.start {
				continue
			}
			out = append(out, newInterval(from, boundary.Yesterday()))
			from = boundary
		}
		return append(out, newInterval(from, i.end)), nil
	case KindUnbounded:
		return nil, fmt.Errorf("split %v by %v: %w", i, u, ErrUnbounded)
	}
	panic(invalidKind(i))
}

// SplitByDay splits the interval into the days before day and the days
// from day onwards. The interval is returned unchanged if day is not
// after its start or is after its end. The end of an unbounded interval
// is never split off.
func (i Interval) SplitByDay(day Date) List {
	switch i.kind {
	case KindOneDay:
		return List{i}
	case KindBounded:
		if i.start < day && day <= i.end {
			return List{newInterval(i.start, day.Yesterday()), newInterval(day, i.end)}
		}
		return List{i}
	case KindUnbounded:
		if i.start < day && day < MaxDate {
			return List{newInterval(i.start, day.Yesterday()), newInterval(day, MaxDate)}
		}
		return List{i}
	}
	panic(invalidKind(i))
}

// SplitByInterval splits the interval into the parts that lie outside
// of o and the part that is shared with o, sorted by start day.
// The interval is returned unchanged if it does not intersect o or is
// contained by o.
func (i Interval) SplitByInterval(o Interval) List {
	switch i.kind {
	case KindOneDay:
		return List{i}
	case KindBounded, KindUnbounded:
		shared, ok := i.Intersect(o)
		if !ok || o.ContainsInterval(i) {
			return List{i}
		}
		parts := append(i.Subtract(o), shared)
		slices.SortFunc(parts, Interval.Compare)
		return parts
	}
	panic(invalidKind(i))
}

// Subtract returns the parts of the interval that are not within o.
// The result is empty if o contains the interval and is the interval
// itself if the two do not intersect or o is the zero Interval.
func (i Interval) Subtract(o Interval) List {
	if !i.Intersects(o) {
		return List{i}
	}
	switch i.kind {
	case KindOneDay:
		return nil
	case KindBounded, KindUnbounded:
		var out List
		if i.start < o.start {
			out = append(out, newInterval(i.start, o.start.Yesterday()))
		}
		if o.end < i.end {
			out = append(out, newInterval(o.end.Tomorrow(), i.end))
		}
		return out
	}
	panic(invalidKind(i))
}

// SubtractAll returns the parts of the interval that are not within
// any of others, sorted by start day. Only those of others that
// intersect the interval are considered.
func (i Interval) SubtractAll(others []Interval) List {
	var applicable List
	for _, o := range others {
		if i.Intersects(o) {
			applicable = append(applicable, o)
		}
	}
	switch len(applicable) {
	case 0:
		return List{i}
	case 1:
		return i.Subtract(applicable[0])
	}
	var out List
	for _, gap := range Gaps(applicable) {
		if i.Intersects(gap) {
			out = append(out, gap)
		}
	}
	first := slices.MinFunc(applicable, Interval.Compare)
	last := slices.MaxFunc(applicable, func(a, b Interval) int {
		return cmp.Compare(a.end, b.end)
	})
	out = append(out, i.Subtract(newInterval(first.start, last.end))...)
	slices.SortFunc(out, Interval.Compare)
	return out
}

