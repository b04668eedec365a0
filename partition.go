// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import "slices"

// NewList returns a List containing the supplied intervals sorted by
// start, then end, day.
func NewList(intervals ...Interval) List {
	l := slices.Clone(List(intervals))
	slices.SortFunc(l, Interval.Compare)
	return l
}

// Span returns the interval from the earliest start to the latest end
// of the intervals in the list, it returns false for an empty list.
func (l List) Span() (Interval, bool) {
	if len(l) == 0 {
		return Interval{}, false
	}
	start, end := l[0].start, l[0].end
	for _, r := range l[1:] {
		start, end = min(start, r.start), max(end, r.end)
	}
	return newInterval(start, end), true
}

// SplitByFiniteness returns the finite and unbounded intervals in the list.
func (l List) SplitByFiniteness() (finite, unbounded List) {
	for _, r := range l {
		if r.IsFinite() {
			finite = append(finite, r)
			continue
		}
		unbounded = append(unbounded, r)
	}
	return
}

// SplitBeforeDay returns the parts of the intervals in the list that lie
// before day and those that lie on or after it. Intervals that contain
// day are split into two.
func (l List) SplitBeforeDay(day Date) (before, onOrAfter List) {
	for _, r := range l {
		for _, part := range r.SplitByDay(day) {
			if part.end < day {
				before = append(before, part)
				continue
			}
			onOrAfter = append(onOrAfter, part)
		}
	}
	return
}

// Partition represents the parts of a List that lie before, within and
// after a given interval.
type Partition struct {
	Before List
	Within List
	After  List
}

// SplitByInterval partitions the intervals in the list into those parts
// that lie before, within and after o. Intervals that intersect o are
// split by it first.
func (l List) SplitByInterval(o Interval) Partition {
	var p Partition
	for _, r := range l {
		for _, part := range r.SplitByInterval(o) {
			switch {
			case part.end < o.start:
				p.Before = append(p.Before, part)
			case o.ContainsInterval(part):
				p.Within = append(p.Within, part)
			default:
				p.After = append(p.After, part)
			}
		}
	}
	return p
}
