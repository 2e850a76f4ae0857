// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package awards

// WinRecord is the part of a winning movie record the interval computation reads.
type WinRecord struct {
	Year      int
	Producers string
}

// ProducerWin is one credited producer of one winning record.
type ProducerWin struct {
	Producer string
	Year     int
}

// ProducerInterval is the gap between two consecutive wins of a producer.
// FollowingWin and Interval stay nil while the interval is open, that is
// while PreviousWin is the producer's latest known win.
type ProducerInterval struct {
	Producer     string
	PreviousWin  int
	FollowingWin *int
	Interval     *int
}

// IsOpen reports whether no later win has closed the interval yet.
func (p ProducerInterval) IsOpen() bool {
	return p.FollowingWin == nil
}

// IntervalEntry is a closed interval as exposed by the API.
type IntervalEntry struct {
	Producer     string `json:"producer"`
	Interval     int    `json:"interval"`
	PreviousWin  int    `json:"previousWin"`
	FollowingWin int    `json:"followingWin"`
}

// MinMaxResult holds every interval tied at the global minimum and maximum.
// Both slices are non-nil so they encode as [] rather than null.
type MinMaxResult struct {
	Min []IntervalEntry `json:"min"`
	Max []IntervalEntry `json:"max"`
}
