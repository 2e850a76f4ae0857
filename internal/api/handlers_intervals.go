// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/razzie/internal/awards"
	"github.com/tomtom215/razzie/internal/metrics"
)

// MinMaxIntervals returns the producers with the shortest and the longest
// gap between two consecutive wins. The result is computed from storage on
// every request.
//
// @Summary Producer award intervals
// @Description Every producer interval tied at the minimum and at the maximum gap between consecutive worst picture wins
// @Tags Movies
// @Produce json
// @Success 200 {object} awards.MinMaxResult
// @Failure 500 {object} models.APIResponse "Winners could not be read"
// @Router /movie-list/min-max-intervals [get]
func (h *Handler) MinMaxIntervals(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	winners, err := h.winners.ListWinners(r.Context())
	if err != nil {
		metrics.RecordIntervalComputation(time.Since(start), 0, err)
		respondError(w, r, http.StatusInternalServerError, codeInternalError, err.Error(), nil, err)
		return
	}

	result := awards.ComputeMinMax(winners)
	metrics.RecordIntervalComputation(time.Since(start), len(winners), nil)

	writeJSON(w, http.StatusOK, result)
}
