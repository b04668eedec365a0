// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange_test

import (
	"strings"
	"testing"
	"time"

	"cloudeng.io/dayrange"
)

func newDate(y, m, d int) dayrange.Date {
	date, err := dayrange.NewDate(y, time.Month(m), d)
	if err != nil {
		panic(err)
	}
	return date
}

// nd parses a date in YYYY-MM-DD format.
func nd(val string) dayrange.Date {
	date, err := dayrange.ParseDate(val)
	if err != nil {
		panic(err)
	}
	return date
}

// ndr returns the interval from start to end, an end of "∞" creates
// an unbounded interval.
func ndr(t *testing.T, start, end string) dayrange.Interval {
	t.Helper()
	var r dayrange.Interval
	var err error
	if end == "∞" {
		r, err = dayrange.StartingOn(nd(start))
	} else {
		r, err = dayrange.New(nd(start), nd(end))
	}
	if err != nil {
		t.Fatalf("%v, %v: %v", start, end, err)
	}
	return r
}

// intervals parses each of its arguments as an interval, ie. "[2024-01-01]",
// "[2024-01-01,2024-01-05]" or "[2024-01-01,∞[".
func intervals(t *testing.T, vals ...string) dayrange.List {
	t.Helper()
	if len(vals) == 0 {
		return nil
	}
	l := make(dayrange.List, 0, len(vals))
	for _, v := range vals {
		r, err := dayrange.ParseInterval(v)
		if err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		l = append(l, r)
	}
	return l
}

// daysFromString parses a comma separated list of dates.
func daysFromString(t *testing.T, val string) []dayrange.Date {
	t.Helper()
	var dl dayrange.DateList
	if err := dl.Parse(val); err != nil {
		t.Fatalf("%v: %v", val, err)
	}
	return dl
}

func listString(l dayrange.List) string {
	if len(l) == 0 {
		return "[]"
	}
	return l.String()
}

func datesString(days []dayrange.Date) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

func errOnly(_ dayrange.Interval, err error) error {
	return err
}
