// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"context"
	"time"

	"github.com/tomtom215/razzie/internal/database"
	"github.com/tomtom215/razzie/internal/models"
)

// MovieStore is the storage used by the movie handlers. *database.DB implements it.
type MovieStore interface {
	InsertMovie(ctx context.Context, m *models.Movie) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id int64, patch models.MoviePatch) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
	CountMovies(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// Handler manages HTTP request handlers
type Handler struct {
	store     MovieStore
	winners   database.WinnerReader
	startTime time.Time
}

// NewHandler creates a handler. winners is normally a database.BreakerReader
// wrapping the same database as store.
func NewHandler(store MovieStore, winners database.WinnerReader) *Handler {
	return &Handler{
		store:     store,
		winners:   winners,
		startTime: time.Now(),
	}
}
