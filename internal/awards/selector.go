// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package awards

// SelectMinMax returns every closed interval equal to the smallest gap and
// every closed interval equal to the largest gap. Ties are all reported, in
// the order the intervals were built. Open intervals are ignored, so a
// producer with a single win never appears. With no closed interval at all
// both lists are empty.
func SelectMinMax(intervals []ProducerInterval) MinMaxResult {
	result := MinMaxResult{
		Min: []IntervalEntry{},
		Max: []IntervalEntry{},
	}

	closed := make([]IntervalEntry, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Interval == nil || iv.FollowingWin == nil {
			continue
		}
		closed = append(closed, IntervalEntry{
			Producer:     iv.Producer,
			Interval:     *iv.Interval,
			PreviousWin:  iv.PreviousWin,
			FollowingWin: *iv.FollowingWin,
		})
	}
	if len(closed) == 0 {
		return result
	}

	minGap, maxGap := closed[0].Interval, closed[0].Interval
	for _, e := range closed[1:] {
		minGap = min(minGap, e.Interval)
		maxGap = max(maxGap, e.Interval)
	}

	for _, e := range closed {
		if e.Interval == minGap {
			result.Min = append(result.Min, e)
		}
		if e.Interval == maxGap {
			result.Max = append(result.Max, e)
		}
	}
	return result
}

// ComputeMinMax runs BuildWins, BuildIntervals and SelectMinMax over records.
func ComputeMinMax(records []WinRecord) MinMaxResult {
	return SelectMinMax(BuildIntervals(BuildWins(records)))
}
