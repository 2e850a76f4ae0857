// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { Init(DefaultConfig()) })

	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))
	slogger.Warn("service failed",
		"service", "http-server",
		"restarts", 3,
		"backoff", 15*time.Second,
		"err", errors.New("bind: address in use"),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service failed"`,
		`"service":"http-server"`,
		`"restarts":3`,
		`"err":"bind: address in use"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { Init(DefaultConfig()) })

	var h slog.Handler = NewSlogHandlerWithLogger(zerolog.New(&buf))
	h = h.WithAttrs([]slog.Attr{slog.String("supervisor", "razzie")})
	h = h.WithGroup("event")

	slog.New(h).Info("restart", "name", "api-layer", slog.Group("timing", "ms", 12))

	output := buf.String()
	for _, want := range []string{
		`"event.supervisor":"razzie"`,
		`"event.name":"api-layer"`,
		`"event.timing.ms":12`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}

	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { Init(DefaultConfig()) })

	h := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(zerolog.InfoLevel))

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, true},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger(t *testing.T) {
	if NewSlogLogger() == nil {
		t.Fatal("NewSlogLogger() = nil")
	}
}
