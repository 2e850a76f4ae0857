// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/razzie/internal/awards"
	"github.com/tomtom215/razzie/internal/config"
	"github.com/tomtom215/razzie/internal/database"
	"github.com/tomtom215/razzie/internal/models"
)

// testDBSemaphore serializes DuckDB usage across parallel tests.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an in-memory database held exclusively until the test ends.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&config.DatabaseConfig{
		Path:                   ":memory:",
		MaxMemory:              "512MB",
		PreserveInsertionOrder: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// failingWinners always fails to read winners.
type failingWinners struct{ err error }

func (f failingWinners) ListWinners(_ context.Context) ([]awards.WinRecord, error) {
	return nil, f.err
}

type testServer struct {
	db      *database.DB
	handler http.Handler
}

func testMiddlewareConfig() *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return cfg
}

// newTestServer wires a router to a fresh database. A nil winners reader
// reads from the database through a circuit breaker, as in production.
func newTestServer(t *testing.T, winners database.WinnerReader, mwCfg *ChiMiddlewareConfig) *testServer {
	t.Helper()
	db := setupTestDB(t)
	if winners == nil {
		bcfg := database.DefaultBreakerConfig()
		bcfg.Name = "api-test-" + t.Name()
		winners = database.NewBreakerReader(db, bcfg)
	}
	if mwCfg == nil {
		mwCfg = testMiddlewareConfig()
	}
	router := NewRouter(NewHandler(db, winners), mwCfg)
	return &testServer{db: db, handler: router.SetupChi()}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createMovie(t *testing.T, year int, title, producers string, winner bool) models.Movie {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"year":      year,
		"title":     title,
		"studios":   "Test Studio",
		"producers": producers,
		"winner":    winner,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rec := s.do(t, http.MethodPost, "/movie-list", string(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /movie-list status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var m models.Movie
	decodeBody(t, rec, &m)
	return m
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *models.APIError {
	t.Helper()
	var resp models.APIResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "error" || resp.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if resp.Metadata.Timestamp.IsZero() || time.Since(resp.Metadata.Timestamp) > time.Minute {
		t.Errorf("metadata timestamp = %v", resp.Metadata.Timestamp)
	}
	return resp.Error
}
