// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package movieimport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tomtom215/razzie/internal/awards"
	"github.com/tomtom215/razzie/internal/config"
	"github.com/tomtom215/razzie/internal/models"
)

// mockStore records inserted batches and can fail or block on demand.
// Single-row inserts are recorded as one-movie batches.
type mockStore struct {
	mu        sync.Mutex
	batches   [][]models.Movie
	failOn    int // 1-based batch number that fails; 0 never fails
	badTitles map[string]bool
	block     chan struct{}
	entered   chan struct{}
}

func (m *mockStore) InsertMovies(_ context.Context, movies []models.Movie) (int, error) {
	if m.block != nil {
		m.entered <- struct{}{}
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == len(m.batches)+1 {
		m.batches = append(m.batches, nil)
		return 0, errors.New("insert failed")
	}
	cp := append([]models.Movie(nil), movies...)
	m.batches = append(m.batches, cp)
	return len(movies), nil
}

func (m *mockStore) InsertMovie(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.badTitles[movie.Title] {
		return nil, errors.New("constraint violation")
	}
	m.batches = append(m.batches, []models.Movie{*movie})
	return movie, nil
}

func (m *mockStore) movies() []models.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Movie
	for _, b := range m.batches {
		out = append(out, b...)
	}
	return out
}

const sampleCSV = "year;title;studios;producers;winner\n" +
	"1980;Can't Stop the Music;Associated Film Distribution;Allan Carr;yes\n" +
	"1980;Cruising;Lorimar Productions, United Artists;Jerry Weintraub;\n" +
	"bad;Broken Year;Studio;Someone;yes\n" +
	"1981;Mommie Dearest;Paramount Pictures;Frank Yablans;yes\n" +
	"1981;Short\n" +
	"1982;Inchon;MGM;Mitsuharu Ishii;yes\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Movielist.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func testImportConfig(path string) *config.ImportConfig {
	return &config.ImportConfig{
		Enabled:   true,
		CSVPath:   path,
		Delimiter: ";",
		BatchSize: 2,
	}
}

func TestImport(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	imp := NewImporter(testImportConfig(writeCSV(t, sampleCSV)), store)

	stats, err := imp.Import(context.Background())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if stats.TotalRows != 6 || stats.Imported != 4 || stats.Skipped != 2 || stats.Errors != 0 {
		t.Errorf("stats = %+v, want 6 rows, 4 imported, 2 skipped", stats)
	}
	if !stats.FileFound {
		t.Error("FileFound = false, want true")
	}
	if stats.EndTime.IsZero() {
		t.Error("EndTime not set")
	}

	movies := store.movies()
	wantTitles := []string{"Can't Stop the Music", "Cruising", "Mommie Dearest", "Inchon"}
	if len(movies) != len(wantTitles) {
		t.Fatalf("stored %d movies, want %d", len(movies), len(wantTitles))
	}
	for i, title := range wantTitles {
		if movies[i].Title != title {
			t.Errorf("movies[%d].Title = %q, want %q", i, movies[i].Title, title)
		}
	}
	if movies[1].Winner {
		t.Error("Cruising should not be a winner")
	}
	if len(store.batches) != 2 {
		t.Errorf("got %d batches, want 2", len(store.batches))
	}
}

func TestImportMissingFile(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	imp := NewImporter(testImportConfig(filepath.Join(t.TempDir(), "missing.csv")), store)

	stats, err := imp.Import(context.Background())
	if err != nil {
		t.Fatalf("Import() error = %v, want nil for a missing file", err)
	}
	if stats.FileFound || stats.TotalRows != 0 || stats.Imported != 0 {
		t.Errorf("stats = %+v, want empty", stats)
	}
	if len(store.batches) != 0 {
		t.Error("store should not be called")
	}
}

func TestImportBadHeader(t *testing.T) {
	t.Parallel()

	imp := NewImporter(testImportConfig(writeCSV(t, "a;b;c\n1;2;3\n")), &mockStore{})
	if _, err := imp.Import(context.Background()); err == nil {
		t.Error("Import() with a bad header should fail")
	}
	if imp.IsRunning() {
		t.Error("IsRunning() = true after a failed import")
	}
}

func TestImportDryRun(t *testing.T) {
	t.Parallel()

	cfg := testImportConfig(writeCSV(t, sampleCSV))
	cfg.DryRun = true
	store := &mockStore{}

	stats, err := NewImporter(cfg, store).Import(context.Background())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !stats.DryRun || stats.Imported != 4 {
		t.Errorf("stats = %+v, want dry run with 4 counted", stats)
	}
	if len(store.batches) != 0 {
		t.Error("dry run should not write to the store")
	}
}

func TestImportBatchFailureFallsBackToSingleRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		badTitles    map[string]bool
		wantImported int64
		wantErrors   int64
	}{
		{name: "every row saved", wantImported: 4},
		{name: "one row rejected", badTitles: map[string]bool{"Cruising": true}, wantImported: 3, wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &mockStore{failOn: 1, badTitles: tt.badTitles}
			stats, err := NewImporter(testImportConfig(writeCSV(t, sampleCSV)), store).Import(context.Background())
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			if stats.Imported != tt.wantImported || stats.Errors != tt.wantErrors {
				t.Errorf("stats = %+v, want %d imported and %d errors", stats, tt.wantImported, tt.wantErrors)
			}
			if got := int64(len(store.movies())); got != tt.wantImported {
				t.Errorf("stored %d movies, want %d", got, tt.wantImported)
			}
			for _, m := range store.movies() {
				if tt.badTitles[m.Title] {
					t.Errorf("rejected movie %q was stored", m.Title)
				}
			}
		})
	}
}

func TestImportKeepsRowsWithBlankCells(t *testing.T) {
	t.Parallel()

	content := "year;title;studios;producers;winner\n" +
		"1980;Can't Stop the Music;;Allan Carr;yes\n" +
		"1899;Early Picture;Studio;Someone;\n" +
		"1985;;Tri-Star;Allan Carr;yes\n"
	store := &mockStore{}

	stats, err := NewImporter(testImportConfig(writeCSV(t, content)), store).Import(context.Background())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if stats.Imported != 3 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 3 imported and none skipped", stats)
	}

	movies := store.movies()
	if movies[0].Studios != "" || !movies[0].Winner {
		t.Errorf("movies[0] = %+v, want a winner with blank studios", movies[0])
	}
	if movies[1].Year != 1899 {
		t.Errorf("movies[1].Year = %d, want 1899", movies[1].Year)
	}

	var records []awards.WinRecord
	for _, m := range movies {
		if m.Winner {
			records = append(records, awards.WinRecord{Year: m.Year, Producers: m.Producers})
		}
	}
	result := awards.ComputeMinMax(records)
	if len(result.Min) != 1 || result.Min[0].Producer != "Allan Carr" || result.Min[0].Interval != 5 {
		t.Errorf("ComputeMinMax().Min = %+v, want Allan Carr with interval 5", result.Min)
	}
}

func TestImportCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewImporter(testImportConfig(writeCSV(t, sampleCSV)), &mockStore{}).Import(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Import() error = %v, want context.Canceled", err)
	}
}

func TestImportAlreadyRunning(t *testing.T) {
	t.Parallel()

	store := &mockStore{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	imp := NewImporter(testImportConfig(writeCSV(t, sampleCSV)), store)

	done := make(chan error, 1)
	go func() {
		_, err := imp.Import(context.Background())
		done <- err
	}()

	<-store.entered
	if !imp.IsRunning() {
		t.Error("IsRunning() = false during import")
	}
	if _, err := imp.Import(context.Background()); err == nil {
		t.Error("second Import() should fail while the first is running")
	}

	// Release the first batch; the second batch blocks on entered again.
	close(store.block)
	go func() {
		for range store.entered {
		}
	}()
	if err := <-done; err != nil {
		t.Fatalf("first Import() error = %v", err)
	}
	close(store.entered)
}
