// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package movieimport

import (
	"time"
)

// ImportStats holds statistics about an import operation.
type ImportStats struct {
	// TotalRows is the number of data rows read from the file, excluding the header.
	TotalRows int64

	// Imported is the number of movies written to the database.
	Imported int64

	// Skipped is the number of rows rejected while parsing or validating.
	Skipped int64

	// Errors is the number of valid rows that failed to be stored.
	Errors int64

	// StartTime is when the import started.
	StartTime time.Time

	// EndTime is when the import completed (zero if still running).
	EndTime time.Time

	// DryRun indicates rows were parsed and validated but not stored.
	DryRun bool

	// FileFound is false when the CSV file did not exist.
	FileFound bool
}

// Duration returns the duration of the import operation.
func (s *ImportStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Failed returns the rows that did not make it into the database for any reason.
func (s *ImportStats) Failed() int64 {
	return s.Skipped + s.Errors
}

// CSVRecord is one data row of the movie list, with fields still untrimmed.
type CSVRecord struct {
	Line      int
	Year      string
	Title     string
	Studios   string
	Producers string
	Winner    string
}
