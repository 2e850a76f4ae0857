// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Import   ImportConfig   `koanf:"import"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path                   string `koanf:"path"` // ":memory:" keeps the movie list in process memory
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"` // 0 = runtime.NumCPU()
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`

	// CheckpointInterval applies to file-backed databases only.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// IsInMemory reports whether the database lives only in process memory.
func (d *DatabaseConfig) IsInMemory() bool {
	return d.Path == "" || d.Path == ":memory:"
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ImportConfig controls the startup CSV import of the movie list.
type ImportConfig struct {
	Enabled   bool   `koanf:"enabled"`
	CSVPath   string `koanf:"csv_path"`
	Delimiter string `koanf:"delimiter"`
	BatchSize int    `koanf:"batch_size"`
	DryRun    bool   `koanf:"dry_run"`
}

// DelimiterRune returns the configured separator, or ';' when unset.
func (i *ImportConfig) DelimiterRune() rune {
	for _, r := range i.Delimiter {
		return r
	}
	return ';'
}

// Load reads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
