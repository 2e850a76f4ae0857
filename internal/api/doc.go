// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

/*
Package api provides the HTTP surface of the service on a chi router.

# Routes

The movie routes are mounted twice, at /api/v1/movies and at /movie-list:

	POST   /                     create a movie (201)
	GET    /                     list every movie
	GET    /min-max-intervals    producers with the shortest and longest gap between wins
	GET    /{id}                 fetch one movie
	PATCH  /{id}                 partial update
	DELETE /{id}                 remove a movie

Operational routes:

	GET /health         database status, movie count and uptime
	GET /health/live    liveness probe
	GET /health/ready   readiness probe (503 when the database is unreachable)
	GET /metrics        Prometheus exposition

# Response Format

Successful movie routes write the resource itself:

	{"id":1,"year":1980,"title":"Can't Stop the Music","studios":"Associated Film Distribution","producers":"Allan Carr","winner":true}

	{"min":[{"producer":"Joel Silver","interval":1,"previousWin":1990,"followingWin":1991}],
	 "max":[{"producer":"Matthew Vaughn","interval":13,"previousWin":2002,"followingWin":2015}]}

Errors use the models.APIResponse envelope:

	{"status":"error","error":{"code":"NOT_FOUND","message":"Movie 42 not found"},
	 "metadata":{"timestamp":"2026-03-01T12:00:00Z","request_id":"..."}}

Error codes: INVALID_JSON, VALIDATION_ERROR, INVALID_ID, NOT_FOUND,
RATE_LIMITED, DATABASE_ERROR and INTERNAL_ERROR.

# Middleware

Global: request ID with logging context, real IP, panic recovery, CORS,
gzip compression. Movie routes add rate limiting (go-chi/httprate), security
headers, Prometheus metrics and access logging.
*/
package api
