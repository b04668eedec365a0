// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
)

// Earliest returns the earliest of the supplied days, it returns
// false if no days are supplied.
func Earliest(days ...Date) (Date, bool) {
	if len(days) == 0 {
		return 0, false
	}
	return slices.Min(days), true
}

// Latest returns the latest of the supplied days, it returns
// false if no days are supplied.
func Latest(days ...Date) (Date, bool) {
	if len(days) == 0 {
		return 0, false
	}
	return slices.Max(days), true
}

// IsConsecutive returns true if the supplied days, once sorted, contain
// no gaps. Duplicate days are treated as a gap.
func IsConsecutive(days []Date) bool {
	sorted := slices.Sorted(slices.Values(days))
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Tomorrow() != sorted[i] {
			return false
		}
	}
	return true
}

// Between returns an iterator over all days from start (inclusive) to
// end (exclusive). Iteration stops after LastDate.
func Between(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if start.IsZero() {
			return
		}
		for d := start; d < end && d <= LastDate; d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

// sortedDistinct returns the non-zero days in ascending order without
// duplicates. The supplied slice is not modified.
func sortedDistinct(days []Date) []Date {
	h := make(heap.Heap[Date], 0, len(days))
	for _, d := range days {
		if !d.IsZero() {
			h = append(h, d)
		}
	}
	h.Init()
	sorted := make([]Date, 0, len(h))
	for h.Len() > 0 {
		d := h.Pop()
		if n := len(sorted); n > 0 && sorted[n-1] == d {
			continue
		}
		sorted = append(sorted, d)
	}
	return sorted
}

// DateList represents a list of Date values.
type DateList []Date

// Parse parses a comma separated list of dates in YYYY-MM-DD format.
// All invalid dates are reported in the returned error.
func (dl *DateList) Parse(val string) error {
	if len(strings.TrimSpace(val)) == 0 {
		*dl = nil
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	errs := &errors.M{}
	for _, part := range parts {
		var date Date
		if err := date.Parse(part); err != nil {
			errs.Append(err)
			continue
		}
		d = append(d, date)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*dl = d
	return nil
}

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// Sorted returns the dates in the list in ascending order and without
// duplicates.
func (dl DateList) Sorted() DateList {
	return sortedDistinct(dl)
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(",")
		}
		fmt.Fprintf(&out, "%v", d)
	}
	return out.String()
}
