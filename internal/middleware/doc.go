// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

/*
Package middleware provides HTTP instrumentation middleware.

Both middleware use the http.HandlerFunc signature and are adapted to chi's
func(http.Handler) http.Handler by the api package:

  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labelled by chi route pattern
  - AccessLog: one zerolog event per request with request and correlation IDs

Usage:

	r.Route("/movie-list", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.AccessLog))
	    r.Get("/", handler.ListMovies)
	})

Label cardinality:

Requests chi could not route are labelled "unmatched", so random paths cannot
create new time series.
*/
package middleware
