// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"cloudeng.io/dayrange"
)

func TestSplitByDay(t *testing.T) {
	jan := ndr(t, "2024-01-01", "2024-01-31")
	open := ndr(t, "2024-01-01", "∞")
	one := ndr(t, "2024-01-10", "2024-01-10")
	for _, tc := range []struct {
		interval dayrange.Interval
		day      string
		want     dayrange.List
	}{
		{jan, "2024-01-15", intervals(t, "[2024-01-01,2024-01-14]", "[2024-01-15,2024-01-31]")},
		{jan, "2024-01-02", intervals(t, "[2024-01-01]", "[2024-01-02,2024-01-31]")},
		{jan, "2024-01-31", intervals(t, "[2024-01-01,2024-01-30]", "[2024-01-31]")},
		{jan, "2024-01-01", intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, "2024-02-01", intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, "2023-12-01", intervals(t, "[2024-01-01,2024-01-31]")},
		{open, "2024-06-01", intervals(t, "[2024-01-01,2024-05-31]", "[2024-06-01,∞[")},
		{open, "9999-12-31", intervals(t, "[2024-01-01,9999-12-30]", "[9999-12-31,∞[")},
		{one, "2024-01-10", intervals(t, "[2024-01-10]")},
		{one, "2024-01-11", intervals(t, "[2024-01-10]")},
	} {
		if got, want := listString(tc.interval.SplitByDay(nd(tc.day))), listString(tc.want); got != want {
			t.Errorf("%v at %v: got %v, want %v", tc.interval, tc.day, got, want)
		}
	}
}

func TestSplitByInterval(t *testing.T) {
	jan := ndr(t, "2024-01-01", "2024-01-31")
	for _, tc := range []struct {
		interval, by dayrange.Interval
		want         dayrange.List
	}{
		{jan, ndr(t, "2024-01-10", "2024-01-20"), intervals(t,
			"[2024-01-01,2024-01-09]", "[2024-01-10,2024-01-20]", "[2024-01-21,2024-01-31]")},
		{jan, ndr(t, "2023-12-25", "2024-01-05"), intervals(t,
			"[2024-01-01,2024-01-05]", "[2024-01-06,2024-01-31]")},
		{jan, ndr(t, "2024-01-31", "∞"), intervals(t,
			"[2024-01-01,2024-01-30]", "[2024-01-31]")},
		{jan, ndr(t, "2024-01-15", "2024-01-15"), intervals(t,
			"[2024-01-01,2024-01-14]", "[2024-01-15]", "[2024-01-16,2024-01-31]")},
		{jan, ndr(t, "2024-02-01", "2024-02-10"), intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, ndr(t, "2023-01-01", "2024-12-31"), intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, jan, intervals(t, "[2024-01-01,2024-01-31]")},
		{ndr(t, "2024-01-01", "∞"), ndr(t, "2024-01-10", "2024-01-20"), intervals(t,
			"[2024-01-01,2024-01-09]", "[2024-01-10,2024-01-20]", "[2024-01-21,∞[")},
		{ndr(t, "2024-01-10", "2024-01-10"), jan, intervals(t, "[2024-01-10]")},
	} {
		if got, want := listString(tc.interval.SplitByInterval(tc.by)), listString(tc.want); got != want {
			t.Errorf("%v by %v: got %v, want %v", tc.interval, tc.by, got, want)
		}
	}
}

func TestSubtract(t *testing.T) {
	jan := ndr(t, "2024-01-01", "2024-01-31")
	for _, tc := range []struct {
		interval, other dayrange.Interval
		want            dayrange.List
	}{
		{jan, ndr(t, "2024-01-10", "2024-01-20"), intervals(t,
			"[2024-01-01,2024-01-09]", "[2024-01-21,2024-01-31]")},
		{jan, jan, nil},
		{jan, ndr(t, "2023-01-01", "∞"), nil},
		{jan, ndr(t, "2024-02-01", "2024-02-10"), intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, ndr(t, "2023-12-01", "2024-01-01"), intervals(t, "[2024-01-02,2024-01-31]")},
		{jan, ndr(t, "2024-01-15", "∞"), intervals(t, "[2024-01-01,2024-01-14]")},
		{jan, ndr(t, "2024-01-02", "2024-01-30"), intervals(t, "[2024-01-01]", "[2024-01-31]")},
		{ndr(t, "2024-01-01", "∞"), ndr(t, "2024-01-10", "2024-01-20"), intervals(t,
			"[2024-01-01,2024-01-09]", "[2024-01-21,∞[")},
		{ndr(t, "2024-01-01", "∞"), ndr(t, "2024-01-10", "∞"), intervals(t,
			"[2024-01-01,2024-01-09]")},
		{ndr(t, "2024-01-10", "2024-01-10"), jan, nil},
		{ndr(t, "2024-01-10", "2024-01-10"), ndr(t, "2024-01-11", "2024-01-11"), intervals(t, "[2024-01-10]")},
	} {
		if got, want := listString(tc.interval.Subtract(tc.other)), listString(tc.want); got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.interval, tc.other, got, want)
		}
	}
}

func TestSubtractAll(t *testing.T) {
	jan := ndr(t, "2024-01-01", "2024-01-31")
	for _, tc := range []struct {
		interval dayrange.Interval
		others   dayrange.List
		want     dayrange.List
	}{
		{jan, nil, intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, intervals(t, "[2023-01-01]", "[2024-02-01,∞["), intervals(t, "[2024-01-01,2024-01-31]")},
		{jan, intervals(t, "[2024-01-10,2024-01-20]", "[2023-01-01]"), intervals(t,
			"[2024-01-01,2024-01-09]", "[2024-01-21,2024-01-31]")},
		{jan, intervals(t, "[2024-01-05,2024-01-10]", "[2024-01-20,2024-01-25]", "[2023-01-01]"), intervals(t,
			"[2024-01-01,2024-01-04]", "[2024-01-11,2024-01-19]", "[2024-01-26,2024-01-31]")},
		{jan, intervals(t, "[2024-01-20,2024-01-25]", "[2024-01-05,2024-01-10]"), intervals(t,
			"[2024-01-01,2024-01-04]", "[2024-01-11,2024-01-19]", "[2024-01-26,2024-01-31]")},
		{jan, intervals(t, "[2023-12-01,2024-01-03]", "[2024-01-30,∞["), intervals(t,
			"[2024-01-04,2024-01-29]")},
		{jan, intervals(t, "[2024-01-05,2024-01-15]", "[2024-01-10,2024-01-20]"), intervals(t,
			"[2024-01-01,2024-01-04]", "[2024-01-21,2024-01-31]")},
		{jan, intervals(t, "[2024-01-01,2024-01-15]", "[2024-01-16,2024-01-31]"), nil},
		{ndr(t, "2024-01-01", "∞"), intervals(t, "[2024-01-05,2024-01-10]", "[2024-02-01,2024-02-02]"), intervals(t,
			"[2024-01-01,2024-01-04]", "[2024-01-11,2024-01-31]", "[2024-02-03,∞[")},
	} {
		if got, want := listString(tc.interval.SubtractAll(tc.others)), listString(tc.want); got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.interval, tc.others, got, want)
		}
	}
}

// randomIntervals returns n intervals that start within the first few
// months of 2024, some of which are unbounded.
func randomIntervals(rnd *rand.Rand, n int) dayrange.List {
	pool := slices.Collect(dayrange.Between(newDate(2024, 1, 1), newDate(2024, 4, 1)))
	l := make(dayrange.List, 0, n)
	for range n {
		start := rnd.IntN(len(pool))
		var r dayrange.Interval
		var err error
		switch rnd.IntN(10) {
		case 0:
			r, err = dayrange.StartingOn(pool[start])
		case 1, 2:
			r, err = dayrange.OneDay(pool[start])
		default:
			end := min(start+rnd.IntN(20), len(pool)-1)
			r, err = dayrange.New(pool[start], pool[end])
		}
		if err != nil {
			panic(err)
		}
		l = append(l, r)
	}
	return l
}

func TestSubtractIntersectPartition(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		pair := randomIntervals(rnd, 2)
		a, b := pair[0], pair[1]
		diff := a.Subtract(b)
		for _, d := range diff {
			if d.Intersects(b) {
				t.Errorf("%v - %v: %v intersects %v", a, b, d, b)
			}
			if !a.ContainsInterval(d) {
				t.Errorf("%v - %v: %v is not within %v", a, b, d, a)
			}
		}
		parts := slices.Clone(diff)
		if shared, ok := a.Intersect(b); ok {
			parts = append(parts, shared)
		}
		merged := dayrange.Merge(parts)
		if len(merged) != 1 || merged[0] != a {
			t.Errorf("%v - %v: got %v, want %v", a, b, merged, a)
		}
		if got, want := listString(a.SubtractAll(dayrange.List{b})), listString(diff); got != want {
			t.Errorf("%v - %v: got %v, want %v", a, b, got, want)
		}
	}
}

func TestSubtractAllProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		a := randomIntervals(rnd, 1)[0]
		others := randomIntervals(rnd, 1+rnd.IntN(5))
		remaining := a.SubtractAll(others)
		for _, r := range remaining {
			if !a.ContainsInterval(r) {
				t.Errorf("%v - %v: %v is not within %v", a, others, r, a)
			}
			for _, o := range others {
				if r.Intersects(o) {
					t.Errorf("%v - %v: %v intersects %v", a, others, r, o)
				}
			}
		}
		// The remaining days plus those covered by others make up a.
		covered := slices.Clone(remaining)
		for _, o := range others {
			if shared, ok := a.Intersect(o); ok {
				covered = append(covered, shared)
			}
		}
		merged := dayrange.Merge(covered)
		if len(merged) != 1 || merged[0] != a {
			t.Errorf("%v - %v: got %v, want %v", a, others, merged, a)
		}
	}
}
