// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package database

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/razzie/internal/awards"
	"github.com/tomtom215/razzie/internal/logging"
	"github.com/tomtom215/razzie/internal/metrics"
)

// BreakerConfig tunes the circuit breaker around the winner read.
type BreakerConfig struct {
	Name         string
	MinRequests  uint32
	FailureRatio float64
	Interval     time.Duration
	Timeout      time.Duration
}

// DefaultBreakerConfig opens after 60% failures over at least 10 reads in a
// one minute window and probes again after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "duckdb-winners",
		MinRequests:  10,
		FailureRatio: 0.6,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
	}
}

// BreakerReader wraps a WinnerReader with a circuit breaker. Reads rejected
// while the circuit is open fail immediately with gobreaker.ErrOpenState.
type BreakerReader struct {
	reader WinnerReader
	cb     *gobreaker.CircuitBreaker[[]awards.WinRecord]
	name   string
}

// NewBreakerReader wraps reader with a circuit breaker configured by cfg.
func NewBreakerReader(reader WinnerReader, cfg BreakerConfig) *BreakerReader {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]awards.WinRecord](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 3,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", cfg.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerReader{reader: reader, cb: cb, name: cfg.Name}
}

// ListWinners reads winners through the circuit breaker.
func (b *BreakerReader) ListWinners(ctx context.Context) ([]awards.WinRecord, error) {
	winners, err := b.cb.Execute(func() ([]awards.WinRecord, error) {
		return b.reader.ListWinners(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("Winner read rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return winners, nil
}

// State returns the current breaker state.
func (b *BreakerReader) State() gobreaker.State {
	return b.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
