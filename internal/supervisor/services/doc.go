// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: runs the API *http.Server and shuts it down gracefully
//   - CheckpointService: periodic CHECKPOINT of a file-backed DuckDB database
//
// Each Serve returns ctx.Err() on cancellation and a wrapped error on
// failure, which tells the supervisor to restart it.
package services
