// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/razzie/internal/api"
	"github.com/tomtom215/razzie/internal/config"
	"github.com/tomtom215/razzie/internal/database"
	movieimport "github.com/tomtom215/razzie/internal/import"
	"github.com/tomtom215/razzie/internal/logging"
	"github.com/tomtom215/razzie/internal/supervisor"
	"github.com/tomtom215/razzie/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Bool("import_enabled", cfg.Import.Enabled).
		Msg("Configuration loaded")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run owns every resource so deferred cleanup happens before main exits.
func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The movie list is loaded before the listener opens so the first
	// request already sees it. Import failures never abort startup.
	if cfg.Import.Enabled {
		if _, err := movieimport.NewImporter(&cfg.Import, db).Import(ctx); err != nil {
			logging.Error().Err(err).Str("path", cfg.Import.CSVPath).Msg("Movie list import failed")
		}
	}

	winners := database.NewBreakerReader(db, database.DefaultBreakerConfig())
	router := api.NewRouter(api.NewHandler(db, winners), api.NewChiMiddlewareConfig(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if !cfg.Database.IsInMemory() {
		tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
		logging.Info().Dur("interval", cfg.Database.CheckpointInterval).Msg("Checkpoint service added")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// The channel carries exactly one value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
