// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the sequence and tables if they do not exist yet.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func getTableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS movies_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS movies (
			id BIGINT PRIMARY KEY DEFAULT nextval('movies_id_seq'),
			year INTEGER NOT NULL,
			title VARCHAR NOT NULL,
			studios VARCHAR NOT NULL,
			producers VARCHAR NOT NULL,
			winner BOOLEAN NOT NULL DEFAULT false
		)`,
	}
}
