// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package logging provides the zerolog-based logger shared by every Razzie package.
//
// The package keeps one global zerolog.Logger, configured once from main with
// the values of the logging config section, and exposes level helpers so call
// sites never import zerolog for the common cases:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", csvPath).Msg("Loading movie list")
//	logging.Error().Err(err).Msg("Failed to compute intervals")
//
// # Request Context
//
// The HTTP layer stores a request ID and a short correlation ID in the request
// context. Ctx(ctx) returns a logger that carries both:
//
//	logging.Ctx(r.Context()).Warn().Int64("id", id).Msg("Movie not found")
//
// # slog Bridge
//
// The supervisor tree reports service events through sutureslog, which needs
// a *slog.Logger. NewSlogLogger returns one that writes through zerolog so all
// output shares a single format.
//
// # Configuration
//
// Environment Variables (see internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
package logging
