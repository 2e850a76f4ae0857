// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

/*
Command server runs the worst picture award interval service.

Startup order:

 1. Configuration: koanf defaults, optional config.yaml, environment variables
 2. Logging: zerolog in JSON or console format
 3. Database: DuckDB, in memory by default
 4. Import: the semicolon-separated movie list (files/Movielist.csv)
 5. Supervisor tree: HTTP server, plus periodic checkpoints for file databases

Endpoints (mounted under /api/v1/movies and /movie-list):

	POST   /                   create a movie
	GET    /                   list movies
	GET    /min-max-intervals  producers with the shortest and longest gaps between wins
	GET    /{id}               fetch a movie
	PATCH  /{id}               partial update
	DELETE /{id}               delete a movie

plus GET /health, /health/live, /health/ready and /metrics.

SIGINT and SIGTERM stop accepting connections, let in-flight requests finish
within 10s and close the database.

Example:

	IMPORT_CSV_PATH=./files/Movielist.csv HTTP_PORT=3000 LOG_FORMAT=console ./razzie
*/
package main
