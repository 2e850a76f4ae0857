// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/razzie/internal/awards"
)

// WinnerReader reads the winning records consumed by the interval analytics.
type WinnerReader interface {
	ListWinners(ctx context.Context) ([]awards.WinRecord, error)
}

// ListWinners returns every winning movie ordered by year, then by id.
func (db *DB) ListWinners(ctx context.Context) (winners []awards.WinRecord, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("list_winners", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT year, producers FROM movies WHERE winner = true ORDER BY year ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query winners: %w", err)
	}
	defer closeWithLog(rows, "rows")

	winners = make([]awards.WinRecord, 0)
	for rows.Next() {
		var w awards.WinRecord
		if err = rows.Scan(&w.Year, &w.Producers); err != nil {
			return nil, fmt.Errorf("failed to scan winner: %w", err)
		}
		winners = append(winners, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating winners: %w", err)
	}
	return winners, nil
}
