// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

/*
Package supervisor runs the long-lived services of the process under a
github.com/thejerf/suture/v4 supervisor tree.

Tree layout:

	razzie (root)
	├── data-layer
	│   └── duckdb-checkpoint   (file-backed databases only)
	└── api-layer
	    └── http-server

Services that return an error are restarted with exponential backoff; a
service that keeps failing puts its layer into FailureBackoff without
touching the other layer. Supervisor events are logged through sutureslog
into the zerolog-backed slog handler from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

Shutdown:

Cancelling the context stops every service. Services that do not return
within ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
