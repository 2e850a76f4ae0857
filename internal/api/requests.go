// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"strings"

	"github.com/tomtom215/razzie/internal/models"
)

// CreateMovieRequest is the body of POST /movie-list. Every field is required;
// pointers distinguish an absent field from a zero value such as winner=false.
type CreateMovieRequest struct {
	Year      *int    `json:"year" validate:"required"`
	Title     *string `json:"title" validate:"required,notblank"`
	Studios   *string `json:"studios" validate:"required,notblank"`
	Producers *string `json:"producers" validate:"required,notblank"`
	Winner    *bool   `json:"winner" validate:"required"`
}

// ToMovie converts a validated request to a movie with trimmed text fields.
func (req *CreateMovieRequest) ToMovie() *models.Movie {
	return &models.Movie{
		Year:      *req.Year,
		Title:     strings.TrimSpace(*req.Title),
		Studios:   strings.TrimSpace(*req.Studios),
		Producers: strings.TrimSpace(*req.Producers),
		Winner:    *req.Winner,
	}
}

// UpdateMovieRequest is the body of PATCH /movie-list/{id}. Absent fields
// are left unchanged; present ones follow the create rules.
type UpdateMovieRequest struct {
	Year      *int    `json:"year"`
	Title     *string `json:"title" validate:"omitempty,notblank"`
	Studios   *string `json:"studios" validate:"omitempty,notblank"`
	Producers *string `json:"producers" validate:"omitempty,notblank"`
	Winner    *bool   `json:"winner"`
}

// ToPatch converts a validated request to a movie patch with trimmed text fields.
func (req *UpdateMovieRequest) ToPatch() models.MoviePatch {
	return models.MoviePatch{
		Year:      req.Year,
		Title:     trimmed(req.Title),
		Studios:   trimmed(req.Studios),
		Producers: trimmed(req.Producers),
		Winner:    req.Winner,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
