// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package movieimport loads the worst picture movie list from a delimited
// CSV file into the database.
//
// # File Format
//
// The first row is a header; columns are found by name, case-insensitively:
//
//	year;title;studios;producers;winner
//	1980;Can't Stop the Music;Associated Film Distribution;Allan Carr;yes
//	1980;Cruising;Lorimar Productions, United Artists;Jerry Weintraub;
//
// The delimiter defaults to ';' (IMPORT_DELIMITER). A row is a winner only
// when its winner column is "yes" in any letter case.
//
// # Behavior
//
// The import runs once at startup before the HTTP server accepts requests:
//   - A missing file logs "CSV file not found" and leaves the database empty
//   - Rows with a non-integer year or too few fields are logged and skipped;
//     blank text cells are stored as empty strings
//   - Rows are stored in batches of IMPORT_BATCH_SIZE, one transaction each;
//     a failed batch is retried row by row so only rejected rows are lost
//   - With IMPORT_DRY_RUN=true rows are parsed but not stored
//
// Import statistics are exported as import_rows_total and
// import_duration_seconds Prometheus metrics.
package movieimport
