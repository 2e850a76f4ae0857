// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto when
// the package is loaded. Callers use the Record* helpers rather than touching
// the collectors directly:
//
//	start := time.Now()
//	rows, err := db.QueryContext(ctx, query)
//	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
package metrics
