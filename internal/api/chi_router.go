// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/razzie/internal/middleware"
)

// Movie routes are served under both prefixes. /movie-list is the path
// existing clients use.
const (
	moviesPrefix     = "/api/v1/movies"
	movieListPrefix  = "/movie-list"
	compressionLevel = 5
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the given middleware configuration.
func NewRouter(handler *Handler, mwCfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwCfg),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

	// Set before mounting so sub-routers inherit them
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, codeNotFound, "Route not found", nil, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil, nil)
	})

	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	// One limiter for both prefixes so clients cannot double their quota
	rateLimit := router.chiMiddleware.RateLimit()
	for _, prefix := range []string{moviesPrefix, movieListPrefix} {
		r.Route(prefix, router.movieRoutes(rateLimit))
	}

	return r
}

func (router *Router) movieRoutes(rateLimit func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.AccessLog))

		r.Post("/", router.handler.CreateMovie)
		r.Get("/", router.handler.ListMovies)
		r.Get("/min-max-intervals", router.handler.MinMaxIntervals)
		r.Get("/{id}", router.handler.GetMovie)
		r.Patch("/{id}", router.handler.UpdateMovie)
		r.Delete("/{id}", router.handler.DeleteMovie)
	}
}
