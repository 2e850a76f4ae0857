// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/razzie/internal/database"
	"github.com/tomtom215/razzie/internal/logging"
	"github.com/tomtom215/razzie/internal/models"
)

// CreateMovie handles movie creation
//
// @Summary Create a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie to create"
// @Success 201 {object} models.Movie
// @Failure 400 {object} models.APIResponse "Malformed body, unknown field or validation failure"
// @Router /movie-list [post]
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req CreateMovieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondDecodeError(w, r, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	created, err := h.store.InsertMovie(r.Context(), req.ToMovie())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeDatabaseError, "Failed to create movie", nil, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("id", created.ID).
		Int("year", created.Year).
		Bool("winner", created.Winner).
		Msg("Movie created")

	writeJSON(w, http.StatusCreated, created)
}

// ListMovies returns every stored movie
//
// @Summary List movies
// @Tags Movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movie-list [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.ListMovies(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeDatabaseError, "Failed to list movies", nil, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// GetMovie returns one movie by id
//
// @Summary Get a movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} models.APIResponse "Movie not found"
// @Router /movie-list/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.store.GetMovie(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, id, "Failed to get movie", err)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// UpdateMovie applies a partial update
//
// @Summary Update a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} models.Movie
// @Failure 400 {object} models.APIResponse "Malformed body, unknown field or validation failure"
// @Failure 404 {object} models.APIResponse "Movie not found"
// @Router /movie-list/{id} [patch]
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	var req UpdateMovieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondDecodeError(w, r, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	updated, err := h.store.UpdateMovie(r.Context(), id, req.ToPatch())
	if err != nil {
		h.respondStoreError(w, r, id, "Failed to update movie", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("id", id).Msg("Movie updated")
	writeJSON(w, http.StatusOK, updated)
}

// DeleteMovie removes a movie
//
// @Summary Delete a movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.DeleteResult
// @Failure 404 {object} models.APIResponse "Movie not found"
// @Router /movie-list/{id} [delete]
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteMovie(r.Context(), id); err != nil {
		h.respondStoreError(w, r, id, "Failed to delete movie", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("id", id).Msg("Movie deleted")
	writeJSON(w, http.StatusOK, models.DeleteResult{ID: id, Deleted: true})
}

// movieID parses the {id} parameter and writes a 400 response when it is invalid.
func (h *Handler) movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := parseMovieID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, codeInvalidID, err.Error(), nil, nil)
		return 0, false
	}
	return id, true
}

// respondStoreError writes 404 for a missing movie and 500 for anything else.
func (h *Handler) respondStoreError(w http.ResponseWriter, r *http.Request, id int64, message string, err error) {
	if errors.Is(err, database.ErrMovieNotFound) {
		respondError(w, r, http.StatusNotFound, codeNotFound, fmt.Sprintf("Movie %d not found", id), nil, nil)
		return
	}
	respondError(w, r, http.StatusInternalServerError, codeDatabaseError, message, nil, err)
}
