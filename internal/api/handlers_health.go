// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/razzie/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health
// @Description Database connectivity, stored movie count and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:        "healthy",
		Database:      "connected",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if err := h.store.Ping(r.Context()); err != nil {
		health.Status = "degraded"
		health.Database = "unreachable"
	} else if count, err := h.store.CountMovies(r.Context()); err == nil {
		health.Movies = count
	} else {
		health.Status = "degraded"
	}

	respondSuccess(w, r, http.StatusOK, health)
}

// HealthLive handles liveness probe requests
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests
// Returns 200 OK only if the database answers a ping
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Database is not reachable", nil, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"ready": true,
	})
}
