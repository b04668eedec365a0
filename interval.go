// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// Kind identifies the shape of an Interval.
type Kind uint8

const (
	// KindOneDay is an interval that starts and ends on the same day.
	KindOneDay Kind = iota + 1
	// KindBounded is an interval with a finite end that is after its start.
	KindBounded
	// KindUnbounded is an interval that never ends, its end is MaxDate.
	KindUnbounded
)

func (k Kind) String() string {
	switch k {
	case KindOneDay:
		return "one-day"
	case KindBounded:
		return "bounded"
	case KindUnbounded:
		return "unbounded"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Infinite is the length of an unbounded interval.
const Infinite int64 = math.MaxInt64

// Interval represents a closed range of calendar days, inclusive of both
// its start and end. An Interval is one of three kinds, a single day,
// a bounded range or an unbounded range that starts on a given day and
// never ends. Intervals are created by New, OneDay, StartingOn or
// ParseInterval which ensure that the kind always matches the start
// and end dates. The zero value is not a valid Interval.
type Interval struct {
	kind  Kind
	start Date
	end   Date
}

// newInterval is used for start and end dates that are known to be valid
// and ordered.
func newInterval(start, end Date) Interval {
	switch {
	case start == end:
		return Interval{kind: KindOneDay, start: start, end: start}
	case end == MaxDate:
		return Interval{kind: KindUnbounded, start: start, end: MaxDate}
	}
	return Interval{kind: KindBounded, start: start, end: end}
}

// New returns the Interval from start to end inclusive. An end date of
// MaxDate results in an unbounded interval and identical start and end
// dates result in a one day interval. Dates after LastDate, other than
// an end of MaxDate, are rejected.
func New(start, end Date) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, ErrMissingDate
	}
	if err := inCalendar(start); err != nil {
		return Interval{}, err
	}
	if end != MaxDate {
		if err := inCalendar(end); err != nil {
			return Interval{}, err
		}
	}
	if start > end {
		return Interval{}, fmt.Errorf("%v is after %v: %w", start, end, ErrInvalidInterval)
	}
	return newInterval(start, end), nil
}

// OneDay returns the Interval for a single day.
func OneDay(day Date) (Interval, error) {
	if day.IsZero() {
		return Interval{}, ErrMissingDate
	}
	if err := inCalendar(day); err != nil {
		return Interval{}, err
	}
	return newInterval(day, day), nil
}

// StartingOn returns the unbounded Interval that starts on day.
func StartingOn(day Date) (Interval, error) {
	if day.IsZero() {
		return Interval{}, ErrMissingDate
	}
	if err := inCalendar(day); err != nil {
		return Interval{}, err
	}
	return newInterval(day, MaxDate), nil
}

func inCalendar(d Date) error {
	if d > LastDate {
		return fmt.Errorf("%v is after %v: %w", d, LastDate, ErrInvalidDate)
	}
	return nil
}

// Kind returns the shape of the interval.
func (i Interval) Kind() Kind {
	return i.kind
}

// Start returns the first day of the interval.
func (i Interval) Start() Date {
	return i.start
}

// End returns the last day of the interval, MaxDate for an
// unbounded interval.
func (i Interval) End() Date {
	return i.end
}

// IsZero returns true for the zero Interval.
func (i Interval) IsZero() bool {
	return i.kind == 0
}

// IsOneDay returns true if the interval is a single day.
func (i Interval) IsOneDay() bool {
	return i.kind == KindOneDay
}

// IsFinite returns false for unbounded intervals.
func (i Interval) IsFinite() bool {
	return i.kind != KindUnbounded
}

// Range implements Ranged.
func (i Interval) Range() Interval {
	return i
}

// Compare orders intervals by their start and then their end dates.
func (i Interval) Compare(o Interval) int {
	if c := cmp.Compare(i.start, o.start); c != 0 {
		return c
	}
	return cmp.Compare(i.end, o.end)
}

// Length returns the number of days in the interval, or Infinite for
// an unbounded interval.
func (i Interval) Length() int64 {
	switch i.kind {
	case KindOneDay:
		return 1
	case KindBounded:
		return i.end.ordinal() - i.start.ordinal() + 1
	case KindUnbounded:
		return Infinite
	}
	panic(invalidKind(i))
}

// ContainsDay returns true if day is within the interval.
func (i Interval) ContainsDay(day Date) bool {
	switch i.kind {
	case KindOneDay:
		return day == i.start
	case KindBounded:
		return i.start <= day && day <= i.end
	case KindUnbounded:
		return i.start <= day
	}
	panic(invalidKind(i))
}

// ContainsInterval returns true if o lies entirely within the interval.
func (i Interval) ContainsInterval(o Interval) bool {
	switch i.kind {
	case KindOneDay:
		return o.start == i.start && o.end == i.start
	case KindBounded:
		return i.start <= o.start && o.end <= i.end
	case KindUnbounded:
		return i.start <= o.start
	}
	panic(invalidKind(i))
}

// Intersects returns true if the interval and o share at least one day.
// A zero o represents a missing interval and shares no days with any
// interval.
func (i Interval) Intersects(o Interval) bool {
	if o.IsZero() {
		return false
	}
	switch i.kind {
	case KindOneDay:
		return o.ContainsDay(i.start)
	case KindBounded:
		return o.end >= i.start && o.start <= i.end
	case KindUnbounded:
		return i.start <= o.end
	}
	panic(invalidKind(i))
}

// Intersect returns the days shared by the interval and o, it returns
// false if there are none, including when o is the zero Interval.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	if !i.Intersects(o) {
		return Interval{}, false
	}
	return newInterval(max(i.start, o.start), min(i.end, o.end)), true
}

// Days returns every day in the interval. ErrUnbounded is returned for
// an unbounded interval.
func (i Interval) Days() ([]Date, error) {
	switch i.kind {
	case KindOneDay:
		return []Date{i.start}, nil
	case KindBounded:
		days := make([]Date, 0, i.Length())
		for d := range Between(i.start, i.end.Tomorrow()) {
			days = append(days, d)
		}
		return days, nil
	case KindUnbounded:
		return nil, fmt.Errorf("days of %v: %w", i, ErrUnbounded)
	}
	panic(invalidKind(i))
}

// Months returns every month that the interval touches. ErrUnbounded is
// returned for an unbounded interval.
func (i Interval) Months() ([]YearMonth, error) {
	switch i.kind {
	case KindOneDay:
		return []YearMonth{i.start.YearMonth()}, nil
	case KindBounded:
		return monthsBetween(i.start.YearMonth(), i.end.YearMonth()), nil
	case KindUnbounded:
		return nil, fmt.Errorf("months of %v: %w", i, ErrUnbounded)
	}
	panic(invalidKind(i))
}

// String returns the interval as [start] for a single day, [start,end]
// for a bounded interval or [start,∞[ for an unbounded interval.
// The output can be parsed by ParseInterval.
func (i Interval) String() string {
	switch i.kind {
	case KindOneDay:
		return "[" + i.start.String() + "]"
	case KindBounded:
		return "[" + i.start.String() + "," + i.end.String() + "]"
	case KindUnbounded:
		return "[" + i.start.String() + ",∞["
	}
	return "[]"
}

// ParseInterval parses an interval in the format produced by String.
func ParseInterval(val string) (Interval, error) {
	var i Interval
	if err := i.Parse(val); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Parse parses an interval in one of the formats '[2024-01-02]',
// '[2024-01-02,2024-03-04]' or '[2024-01-02,∞['.
func (i *Interval) Parse(val string) error {
	val = strings.TrimSpace(val)
	if !strings.HasPrefix(val, "[") {
		return fmt.Errorf("invalid interval %q, expected '[<start>' prefix: %w", val, ErrInvalidInterval)
	}
	if from, ok := strings.CutSuffix(val[1:], ",∞["); ok {
		start, err := ParseDate(from)
		if err != nil {
			return fmt.Errorf("invalid start: %w", err)
		}
		*i = newInterval(start, MaxDate)
		return nil
	}
	body, ok := strings.CutSuffix(val[1:], "]")
	if !ok {
		return fmt.Errorf("invalid interval %q, expected ']' or ',∞[' suffix: %w", val, ErrInvalidInterval)
	}
	from, to, found := strings.Cut(body, ",")
	start, err := ParseDate(from)
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	if !found {
		*i = newInterval(start, start)
		return nil
	}
	end, err := ParseDate(to)
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}
	ni, err := New(start, end)
	if err != nil {
		return err
	}
	*i = ni
	return nil
}

func invalidKind(i Interval) string {
	return fmt.Sprintf("dayrange: invalid interval: %v", i.kind)
}
