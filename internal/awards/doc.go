// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package awards computes producer win intervals for the worst picture award.
//
// The package is pure: it takes winning records that storage already fetched
// (year ascending, same-year rows in insertion order) and never performs I/O,
// logging or locking. The pipeline has four stages:
//
//	[]WinRecord --BuildWins--> []ProducerWin --BuildIntervals--> []ProducerInterval --SelectMinMax--> MinMaxResult
//
// ParseProducers splits a credits string such as
// "Uri Fruchtan, Mark L. Rosen and Barnaby Thompson" into individual names.
// BuildWins emits one ProducerWin per credited producer. BuildIntervals pairs
// each win with the same producer's next win. SelectMinMax reports every
// producer tied at the smallest and at the largest gap.
//
// ComputeMinMax runs the whole pipeline:
//
//	records, err := db.ListWinners(ctx)
//	if err != nil {
//	    return err
//	}
//	result := awards.ComputeMinMax(records)
package awards
