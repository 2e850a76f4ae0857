// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package movieimport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/razzie/internal/models"
)

// winnerMarker is the only winner column value that marks a winning movie.
const winnerMarker = "yes"

// ToMovie converts a CSV row to a movie. Text fields are trimmed and may be
// empty; winner is true only for "yes" in any letter case. The only rejected
// value is a year that is not an integer.
func ToMovie(rec *CSVRecord) (*models.Movie, error) {
	year, err := strconv.Atoi(strings.TrimSpace(rec.Year))
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", rec.Year)
	}

	return &models.Movie{
		Year:      year,
		Title:     strings.TrimSpace(rec.Title),
		Studios:   strings.TrimSpace(rec.Studios),
		Producers: strings.TrimSpace(rec.Producers),
		Winner:    strings.EqualFold(strings.TrimSpace(rec.Winner), winnerMarker),
	}, nil
}
