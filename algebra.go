// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import "strings"

// List represents a list of intervals. The functions in this package that
// return a List return it sorted by start, then end, day.
type List []Interval

func (l List) String() string {
	var out strings.Builder
	out.WriteString("[")
	for i, r := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(r.String())
	}
	out.WriteString("]")
	return out.String()
}

// Days returns every day in each of the intervals in the list, in list
// order, including any duplicates. ErrUnbounded is returned if any of the
// intervals is unbounded.
func (l List) Days() ([]Date, error) {
	var days []Date
	for _, r := range l {
		d, err := r.Days()
		if err != nil {
			return nil, err
		}
		days = append(days, d...)
	}
	return days, nil
}

// DistinctDays returns the days covered by any of the intervals in the
// list in ascending order and without duplicates. ErrUnbounded is returned
// if any of the intervals is unbounded.
func (l List) DistinctDays() ([]Date, error) {
	var days []Date
	for _, r := range Merge(l) {
		d, err := r.Days()
		if err != nil {
			return nil, err
		}
		days = append(days, d...)
	}
	return days, nil
}

// GroupSubsequentDays returns the smallest set of intervals that covers
// exactly the supplied days. Duplicate days are ignored.
func GroupSubsequentDays(days []Date) List {
	sorted := sortedDistinct(days)
	if len(sorted) == 0 {
		return nil
	}
	var out List
	from, to := sorted[0], sorted[0]
	for _, d := range sorted[1:] {
		if to.Tomorrow() == d {
			to = d
			continue
		}
		out = append(out, newInterval(from, to))
		from, to = d, d
	}
	return append(out, newInterval(from, to))
}

// AllIntersections returns the finest partition of the days spanned by
// the supplied intervals such that every interval is made up of whole
// cells of the partition. Cells that lie in a gap between the intervals
// are included, see UsedIntersections for only those cells that are
// covered by an interval.
func AllIntersections(intervals []Interval) List {
	borders := make([]Date, 0, len(intervals)*2)
	for _, r := range intervals {
		borders = append(borders, r.start, r.end.Tomorrow())
	}
	return cells(sortedDistinct(borders))
}

// cells returns an interval for each pair of consecutive borders, the
// second border of each pair being exclusive. A single border yields a
// single day.
func cells(borders []Date) List {
	switch len(borders) {
	case 0:
		return nil
	case 1:
		return List{newInterval(borders[0], borders[0])}
	}
	out := make(List, 0, len(borders)-1)
	for i := 1; i < len(borders); i++ {
		out = append(out, newInterval(borders[i-1], borders[i].Yesterday()))
	}
	return out
}

// UsedIntersections returns the cells of AllIntersections that are covered
// by at least one of the supplied intervals.
func UsedIntersections(intervals []Interval) List {
	sorted := NewList(intervals...)
	var out List
	var reach Date
	next := 0
	for _, c := range AllIntersections(intervals) {
		for ; next < len(sorted) && sorted[next].start <= c.start; next++ {
			reach = max(reach, sorted[next].end)
		}
		if reach >= c.start {
			out = append(out, c)
		}
	}
	return out
}

// Gaps returns the intervals between the supplied intervals that are not
// covered by any of them.
func Gaps(intervals []Interval) List {
	used := UsedIntersections(intervals)
	var out List
	for i := 1; i < len(used); i++ {
		prev, next := used[i-1], used[i]
		if after := prev.end.Tomorrow(); after < next.start {
			out = append(out, newInterval(after, next.start.Yesterday()))
		}
	}
	return out
}

// Merge returns the smallest set of intervals that covers exactly the same
// days as the supplied intervals. The result contains no overlapping or
// touching intervals.
func Merge(intervals []Interval) List {
	var out List
	for _, c := range UsedIntersections(intervals) {
		if n := len(out); n > 0 && out[n-1].end.Tomorrow() == c.start {
			out[n-1] = newInterval(out[n-1].start, c.end)
			continue
		}
		out = append(out, c)
	}
	return out
}

