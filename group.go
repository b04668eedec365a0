// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"maps"
	"slices"
)

// Ranged is implemented by values that cover an interval of days.
type Ranged interface {
	Range() Interval
}

// Dated is implemented by values that belong to a single day.
type Dated interface {
	Day() Date
}

// SortByRange returns a copy of items sorted by their intervals, items
// with identical intervals retain their relative order.
func SortByRange[T Ranged](items []T) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return a.Range().Compare(b.Range())
	})
	return sorted
}

// GroupOverlapping groups items whose intervals overlap, directly or
// transitively via other items. Groups are returned in order of their
// earliest start and items within a group are sorted by interval.
// Items whose intervals touch but do not overlap are placed in
// different groups.
func GroupOverlapping[T Ranged](items []T) [][]T {
	if len(items) == 0 {
		return nil
	}
	sorted := SortByRange(items)
	var groups [][]T
	var reach Date
	for i, item := range sorted {
		r := item.Range()
		if i == 0 || reach < r.start {
			groups = append(groups, []T{item})
			reach = r.end
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], item)
		reach = max(reach, r.end)
	}
	return groups
}

// GroupByDay returns items keyed by their day.
func GroupByDay[T Dated](items []T) map[Date][]T {
	grouped := make(map[Date][]T)
	for _, item := range items {
		grouped[item.Day()] = append(grouped[item.Day()], item)
	}
	return grouped
}

// GroupByDaySorted returns items grouped by their day, with the groups
// ordered by day. Items within a group retain their relative order.
func GroupByDaySorted[T Dated](items []T) [][]T {
	grouped := GroupByDay(items)
	out := make([][]T, 0, len(grouped))
	for _, day := range slices.Sorted(maps.Keys(grouped)) {
		out = append(out, grouped[day])
	}
	return out
}
