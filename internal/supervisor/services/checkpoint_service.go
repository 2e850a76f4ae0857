// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/razzie/internal/logging"
)

// Checkpointer flushes the DuckDB write-ahead log into the database file.
// *database.DB satisfies it.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints a file-backed database on a fixed interval
// and once more on shutdown, so records created through the API survive a
// crash without replaying a long WAL.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
}

// NewCheckpointService creates the service. A non-positive interval means 5m.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CheckpointService{db: db, interval: interval}
}

// Serve implements suture.Service. A failed checkpoint is returned so the
// supervisor restarts the loop with backoff.
func (c *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := c.db.Checkpoint(finalCtx); err != nil {
				logging.Warn().Err(err).Msg("Final checkpoint failed")
			}
			cancel()
			return ctx.Err()

		case <-ticker.C:
			if err := c.db.Checkpoint(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				return fmt.Errorf("checkpoint: %w", err)
			}
			logging.Debug().Msg("Database checkpoint completed")
		}
	}
}

// String names the service in supervisor events.
func (c *CheckpointService) String() string {
	return "duckdb-checkpoint"
}
