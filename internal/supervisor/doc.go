// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for Reelmatch using suture v4.

The tree isolates the HTTP server from background model maintenance:

	RootSupervisor ("reelmatch")
	├── ModelSupervisor ("model-layer")
	│   └── ReloadService (if DATA_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, timeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor
