// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package models defines the records stored by Razzie and the shapes written
// by the HTTP API: Movie, MoviePatch for partial updates, and the APIResponse
// error envelope.
package models
