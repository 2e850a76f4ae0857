// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import "errors"

// Request decoding errors
var (
	// ErrEmptyBody indicates the request had no JSON body
	ErrEmptyBody = errors.New("request body is empty")

	// ErrTrailingData indicates more than one JSON value in the body
	ErrTrailingData = errors.New("request body must contain a single JSON object")

	// ErrInvalidID indicates the {id} path parameter is not a positive integer
	ErrInvalidID = errors.New("id must be a positive integer")
)

// Error codes written in the API error envelope
const (
	codeInvalidJSON     = "INVALID_JSON"
	codeValidationError = "VALIDATION_ERROR"
	codeInvalidID       = "INVALID_ID"
	codeNotFound        = "NOT_FOUND"
	codeRateLimited     = "RATE_LIMITED"
	codeDatabaseError   = "DATABASE_ERROR"
	codeInternalError   = "INTERNAL_ERROR"
)
