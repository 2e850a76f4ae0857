// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package awards

import "sort"

// BuildWins expands winning records into one ProducerWin per credited producer.
//
// Records are expected in year order. They are stable-sorted by year anyway,
// so records sharing a year keep the order the caller supplied (storage
// insertion order). Producers of one record are emitted in credit order.
// The same producer may appear many times; nothing is deduplicated.
func BuildWins(records []WinRecord) []ProducerWin {
	ordered := make([]WinRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Year < ordered[j].Year
	})

	wins := make([]ProducerWin, 0, len(ordered))
	for _, rec := range ordered {
		for _, producer := range ParseProducers(rec.Producers) {
			wins = append(wins, ProducerWin{Producer: producer, Year: rec.Year})
		}
	}
	return wins
}
