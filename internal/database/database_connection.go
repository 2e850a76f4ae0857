// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package database

import (
	"runtime"
	"time"
)

// configureConnectionPool sets connection pool parameters.
//
// All pooled connections share one DuckDB instance, which is what keeps an
// in-memory database visible to every connection. The pool therefore never
// closes its last idle connection for an in-memory database.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)

	if db.cfg.IsInMemory() {
		db.conn.SetConnMaxLifetime(0)
		db.conn.SetConnMaxIdleTime(0)
		return
	}

	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}
