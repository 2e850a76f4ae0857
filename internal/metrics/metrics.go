// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
	)

	// Movie list import
	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movielist_import_rows_total",
			Help: "CSV rows seen by the movie list import, by outcome",
		},
		[]string{"outcome"}, // imported, skipped, failed
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movielist_import_duration_seconds",
			Help:    "Duration of movie list imports in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	// Interval analytics
	IntervalComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "producer_interval_computations_total",
			Help: "Total number of min/max producer interval computations",
		},
		[]string{"result"}, // success, error
	)

	IntervalComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "producer_interval_computation_duration_seconds",
			Help:    "Time to read winners and compute min/max producer intervals",
			Buckets: prometheus.DefBuckets,
		},
	)

	IntervalWinnersRead = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "producer_interval_winners_read",
			Help: "Number of winning records read by the last interval computation",
		},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordDBQuery records the duration of a query and counts it as an error when err is set.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordImport records the outcome counts of one movie list import.
func RecordImport(duration time.Duration, imported, skipped, failed int64) {
	ImportDuration.Observe(duration.Seconds())
	ImportRowsTotal.WithLabelValues("imported").Add(float64(imported))
	ImportRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
	ImportRowsTotal.WithLabelValues("failed").Add(float64(failed))
}

// RecordIntervalComputation records one min/max interval computation.
func RecordIntervalComputation(duration time.Duration, winners int, err error) {
	IntervalComputationDuration.Observe(duration.Seconds())
	if err != nil {
		IntervalComputations.WithLabelValues("error").Inc()
		return
	}
	IntervalComputations.WithLabelValues("success").Inc()
	IntervalWinnersRead.Set(float64(winners))
}
