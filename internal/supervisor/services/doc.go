// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name it in log events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, translating ListenAndServe into Serve
  - Graceful shutdown with a configurable timeout
  - http.ErrServerClosed is not treated as a failure

Model Reload (ReloadService):
  - Rebuilds the recommendation models from disk on an interval
  - A failed rebuild is logged and the serving models are kept
  - Never returns an error for a failed rebuild, so suture does not restart it

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
	tree.AddModelService(services.NewReloadService(loader, services.ReloadServiceConfig{
	    Interval: time.Hour,
	}, logger))
*/
package services
