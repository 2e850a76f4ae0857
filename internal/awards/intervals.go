// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package awards

// BuildIntervals pairs each win with the same producer's next win.
//
// wins must be in year order (see BuildWins). A producer with N wins yields N
// intervals: N-1 closed ones and a trailing open one for the latest win.
// Two wins in the same year close an interval of 0, which is kept.
func BuildIntervals(wins []ProducerWin) []ProducerInterval {
	intervals := make([]ProducerInterval, 0, len(wins))

	// producer -> index of that producer's open interval
	open := make(map[string]int, len(wins))

	for _, win := range wins {
		if idx, ok := open[win.Producer]; ok {
			following := win.Year
			gap := win.Year - intervals[idx].PreviousWin
			intervals[idx].FollowingWin = &following
			intervals[idx].Interval = &gap
		}

		intervals = append(intervals, ProducerInterval{
			Producer:    win.Producer,
			PreviousWin: win.Year,
		})
		open[win.Producer] = len(intervals) - 1
	}

	return intervals
}
