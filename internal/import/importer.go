// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package movieimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/tomtom215/razzie/internal/config"
	"github.com/tomtom215/razzie/internal/logging"
	"github.com/tomtom215/razzie/internal/metrics"
	"github.com/tomtom215/razzie/internal/models"
)

// MovieStore persists imported movies. InsertMovies is all-or-nothing;
// InsertMovie stores a single row.
type MovieStore interface {
	InsertMovies(ctx context.Context, movies []models.Movie) (int, error)
	InsertMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
}

// Importer loads the movie list CSV into the database.
type Importer struct {
	cfg   *config.ImportConfig
	store MovieStore

	mu      sync.RWMutex
	running bool
	stats   *ImportStats
}

// NewImporter creates a new movie list importer.
func NewImporter(cfg *config.ImportConfig, store MovieStore) *Importer {
	return &Importer{
		cfg:   cfg,
		store: store,
	}
}

// Import reads the configured CSV file and stores every row whose year parses.
//
// A missing file is not an error: it is logged and an empty result returned.
// Bad rows and failed batches are counted and logged without stopping the
// import. An error is returned only when the file cannot be read at all or
// ctx is cancelled.
func (i *Importer) Import(ctx context.Context) (*ImportStats, error) {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, fmt.Errorf("import already in progress")
	}
	i.running = true
	i.stats = &ImportStats{
		StartTime: time.Now(),
		DryRun:    i.cfg.DryRun,
	}
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.running = false
		i.stats.EndTime = time.Now()
		stats := *i.stats
		i.mu.Unlock()
		metrics.RecordImport(stats.Duration(), stats.Imported, stats.Skipped, stats.Errors)
	}()

	log := logging.With().Str("component", "import").Str("path", i.cfg.CSVPath).Logger()
	log.Info().Msg("Starting CSV data loading")

	reader, err := NewCSVReader(i.cfg.CSVPath, i.cfg.DelimiterRune())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Msg("CSV file not found")
			return i.GetStats(), nil
		}
		return i.GetStats(), err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Error closing CSV file")
		}
	}()

	i.mu.Lock()
	i.stats.FileFound = true
	i.mu.Unlock()

	if err := i.processAllBatches(ctx, reader); err != nil {
		return i.GetStats(), err
	}

	stats := i.GetStats()
	log.Info().
		Int64("loaded", stats.Imported).
		Int64("errors", stats.Failed()).
		Int64("rows", stats.TotalRows).
		Bool("dry_run", stats.DryRun).
		Dur("duration", stats.Duration()).
		Msg("CSV file reading completed, movies loaded")

	return stats, nil
}

// processAllBatches reads rows until EOF, flushing every BatchSize valid movies.
func (i *Importer) processAllBatches(ctx context.Context, reader *CSVReader) error {
	batchSize := i.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	batch := make([]models.Movie, 0, batchSize)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("import cancelled: %w", err)
		}

		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var rowErr *RowError
		switch {
		case errors.As(err, &rowErr):
			i.addStats(1, 0, 1, 0)
			logging.Error().Int("line", rowErr.Line).Err(rowErr.Err).Msg("Skipping unreadable CSV row")
			continue
		case err != nil:
			return err
		}

		movie, err := ToMovie(rec)
		if err != nil {
			i.addStats(1, 0, 1, 0)
			logging.Error().
				Int("line", rec.Line).
				Str("title", rec.Title).
				Err(err).
				Msg("Skipping CSV row with invalid year")
			continue
		}

		i.addStats(1, 0, 0, 0)
		batch = append(batch, *movie)
		if len(batch) >= batchSize {
			i.flush(ctx, batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		i.flush(ctx, batch)
	}
	return nil
}

// flush stores one batch. When the batch transaction fails the rows are
// retried one at a time, so only the rows the store rejects count as errors.
func (i *Importer) flush(ctx context.Context, batch []models.Movie) {
	if i.cfg.DryRun {
		i.addStats(0, int64(len(batch)), 0, 0)
		return
	}

	n, err := i.store.InsertMovies(ctx, batch)
	if err == nil {
		i.addStats(0, int64(n), 0, 0)
		logging.Debug().Int("batch_size", n).Msg("Saved movie batch")
		return
	}

	logging.Warn().Err(err).Int("batch_size", len(batch)).Msg("Batch insert failed, saving movies one by one")
	for idx := range batch {
		if _, err := i.store.InsertMovie(ctx, &batch[idx]); err != nil {
			i.addStats(0, 0, 0, 1)
			logging.Error().
				Err(err).
				Int("year", batch[idx].Year).
				Str("title", batch[idx].Title).
				Msg("Error saving movie")
			continue
		}
		i.addStats(0, 1, 0, 0)
	}
}

func (i *Importer) addStats(rows, imported, skipped, errs int64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stats.TotalRows += rows
	i.stats.Imported += imported
	i.stats.Skipped += skipped
	i.stats.Errors += errs
}

// GetStats returns a copy of the current import statistics.
func (i *Importer) GetStats() *ImportStats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.stats == nil {
		return &ImportStats{}
	}
	stats := *i.stats
	return &stats
}

// IsRunning returns whether an import is currently in progress.
func (i *Importer) IsRunning() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.running
}
