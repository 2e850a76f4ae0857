// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
	if !cfg.Database.IsInMemory() {
		t.Error("Database.IsInMemory() = false, want true")
	}
	if cfg.Database.MaxMemory != "512MB" {
		t.Errorf("Database.MaxMemory = %q, want 512MB", cfg.Database.MaxMemory)
	}
	if !cfg.Database.PreserveInsertionOrder {
		t.Error("Database.PreserveInsertionOrder = false, want true")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Import.CSVPath != "files/Movielist.csv" {
		t.Errorf("Import.CSVPath = %q, want files/Movielist.csv", cfg.Import.CSVPath)
	}
	if cfg.Import.DelimiterRune() != ';' {
		t.Errorf("Import.DelimiterRune() = %q, want ';'", cfg.Import.DelimiterRune())
	}
	if !cfg.Import.Enabled {
		t.Error("Import.Enabled = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"DUCKDB_PATH", "database.path"},
		{"DUCKDB_THREADS", "database.threads"},
		{"HTTP_PORT", "server.port"},
		{"http_host", "server.host"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"IMPORT_CSV_PATH", "import.csv_path"},
		{"IMPORT_DELIMITER", "import.delimiter"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestLoadWithKoanfEnvVars tests overriding defaults from the environment
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("IMPORT_CSV_PATH", "/srv/razzie/movies.csv")
	t.Setenv("IMPORT_BATCH_SIZE", "50")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Import.CSVPath != "/srv/razzie/movies.csv" {
		t.Errorf("Import.CSVPath = %q, want /srv/razzie/movies.csv", cfg.Import.CSVPath)
	}
	if cfg.Import.BatchSize != 50 {
		t.Errorf("Import.BatchSize = %d, want 50", cfg.Import.BatchSize)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}

	// Unset values keep their defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory: (default)", cfg.Database.Path)
	}
}

// TestLoadWithKoanfConfigFile tests loading values from a YAML file and
// overriding part of them from the environment
func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
database:
  path: "/data/razzie.duckdb"

server:
  port: 8888
  host: "127.0.0.1"

import:
  csv_path: "/data/movies.csv"
  delimiter: ","

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Database.Path != "/data/razzie.duckdb" {
		t.Errorf("Database.Path = %q, want /data/razzie.duckdb", cfg.Database.Path)
	}
	if cfg.Database.IsInMemory() {
		t.Error("Database.IsInMemory() = true, want false")
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Import.DelimiterRune() != ',' {
		t.Errorf("Import.DelimiterRune() = %q, want ','", cfg.Import.DelimiterRune())
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env overrides file)", cfg.Logging.Level)
	}
	if cfg.Import.BatchSize != 500 {
		t.Errorf("Import.BatchSize = %d, want 500 (default)", cfg.Import.BatchSize)
	}
}

func TestLoadWithKoanfInvalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "70000")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("LoadWithKoanf() error = nil, want port validation error")
	}
}
