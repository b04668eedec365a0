// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dayrange

// Timeline returns a gapless sequence of intervals, one for each of the
// supplied days, where each interval lasts from its day until the day
// before the next day, and the last interval is unbounded. Duplicate
// days are ignored. For example the days 2001-01-01, 2001-05-01 and
// 2010-01-01 yield:
//
//	[2001-01-01,2001-04-30], [2001-05-01,2009-12-31], [2010-01-01,∞[
//
// Days after LastDate, such as MaxDate, are ignored.
func Timeline(days []Date) List {
	borders := sortedDistinct(days)
	for len(borders) > 0 && borders[len(borders)-1] > LastDate {
		borders = borders[:len(borders)-1]
	}
	if len(borders) == 0 {
		return nil
	}
	return cells(append(borders, MaxDate))
}
