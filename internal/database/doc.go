// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package database stores the movie list in DuckDB.
//
// # Overview
//
// The package owns the DuckDB connection (github.com/duckdb/duckdb-go/v2
// through database/sql), the schema, and every query the service runs.
// By default the database lives in memory (DUCKDB_PATH=:memory:) and is
// rebuilt from the CSV import on every start; a file path keeps it on disk.
//
// Files:
//   - database.go: lifecycle (New, Close, Ping)
//   - database_connection.go: connection pool settings
//   - database_schema.go: table and sequence creation
//   - database_utils.go: context timeouts, checkpoint, counts
//   - movies.go: CRUD over the movies table
//   - winners.go: the ordered winner read used by the interval analytics
//   - breaker.go: circuit breaker around the winner read
//
// # Ordering
//
// ListWinners orders by year, then by id. Ids come from a sequence, so rows
// sharing a year are returned in insertion order.
//
// # Errors
//
// Lookups by id return ErrMovieNotFound when no row matches; callers test it
// with errors.Is. Every other failure is wrapped with the failing operation.
package database
