// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

/*
Package config loads and validates Razzie configuration.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/razzie/config.yaml, /etc/razzie/config.yml
 3. Environment variables, mapped explicitly by envTransformFunc

# Environment Variables

Database (DatabaseConfig):
  - DUCKDB_PATH: database file, or :memory: (default: :memory:)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 512MB)
  - DUCKDB_THREADS: worker threads, 0 uses runtime.NumCPU (default: 0)
  - DUCKDB_CHECKPOINT_INTERVAL: CHECKPOINT period for file databases (default: 5m)

HTTP Server (ServerConfig):
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 3000)
  - HTTP_TIMEOUT: read and write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Security (SecurityConfig):
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: requests per window and client IP (default: 100)
  - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: turn rate limiting off (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller info (default: false)

Movie list import (ImportConfig):
  - IMPORT_ENABLED: load the CSV file at startup (default: true)
  - IMPORT_CSV_PATH: CSV file path (default: files/Movielist.csv)
  - IMPORT_DELIMITER: single-character field separator (default: ;)
  - IMPORT_BATCH_SIZE: rows per insert transaction (default: 500)
  - IMPORT_DRY_RUN: parse and validate without inserting (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
