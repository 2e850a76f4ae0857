// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/razzie/internal/models"
)

const movieColumns = "id, year, title, studios, producers, winner"

// InsertMovie stores m and returns a copy carrying the assigned id.
func (db *DB) InsertMovie(ctx context.Context, m *models.Movie) (created *models.Movie, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("insert", start, err) }()

	out := *m
	row := db.conn.QueryRowContext(ctx,
		`INSERT INTO movies (year, title, studios, producers, winner) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		m.Year, m.Title, m.Studios, m.Producers, m.Winner)
	if err = row.Scan(&out.ID); err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}
	return &out, nil
}

// InsertMovies stores all movies in one transaction, in slice order, and
// returns the number of rows written. Nothing is written when any insert fails.
func (db *DB) InsertMovies(ctx context.Context, movies []models.Movie) (inserted int, err error) {
	if len(movies) == 0 {
		return 0, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("insert_batch", start, err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (year, title, studios, producers, winner) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range movies {
		m := &movies[i]
		if _, err = stmt.ExecContext(ctx, m.Year, m.Title, m.Studios, m.Producers, m.Winner); err != nil {
			return 0, fmt.Errorf("failed to insert movie %q (%d): %w", m.Title, m.Year, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(movies), nil
}

// ListMovies returns every movie ordered by id.
func (db *DB) ListMovies(ctx context.Context) (movies []models.Movie, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("list", start, err) }()

	rows, err := db.conn.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer closeWithLog(rows, "rows")

	movies = make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err = scanMovie(rows, &m); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}
	return movies, nil
}

// GetMovie returns the movie with the given id or ErrMovieNotFound.
func (db *DB) GetMovie(ctx context.Context, id int64) (movie *models.Movie, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		if errors.Is(err, ErrMovieNotFound) {
			observe("get", start, nil)
			return
		}
		observe("get", start, err)
	}()

	return getMovie(ctx, db.conn, id)
}

// UpdateMovie applies patch to the movie with the given id and returns the
// stored result. An empty patch returns the current record unchanged.
func (db *DB) UpdateMovie(ctx context.Context, id int64, patch models.MoviePatch) (updated *models.Movie, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		if errors.Is(err, ErrMovieNotFound) {
			observe("update", start, nil)
			return
		}
		observe("update", start, err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current, err := getMovie(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*current)
	if !patch.IsEmpty() {
		_, err = tx.ExecContext(ctx,
			`UPDATE movies SET year = ?, title = ?, studios = ?, producers = ?, winner = ? WHERE id = ?`,
			next.Year, next.Title, next.Studios, next.Producers, next.Winner, id)
		if err != nil {
			return nil, fmt.Errorf("failed to update movie %d: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &next, nil
}

// DeleteMovie removes the movie with the given id or returns ErrMovieNotFound.
func (db *DB) DeleteMovie(ctx context.Context, id int64) (err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		if errors.Is(err, ErrMovieNotFound) {
			observe("delete", start, nil)
			return
		}
		observe("delete", start, err)
	}()

	result, err := db.conn.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getMovie(ctx context.Context, q queryRower, id int64) (*models.Movie, error) {
	var m models.Movie
	row := q.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id)
	if err := scanMovie(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(s scanner, m *models.Movie) error {
	if err := s.Scan(&m.ID, &m.Year, &m.Title, &m.Studios, &m.Producers, &m.Winner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("failed to scan movie: %w", err)
	}
	return nil
}
