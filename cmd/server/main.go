// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
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
		Str("data_root", cfg.Data.Root).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Reelmatch")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := api.NewHandler(nil)
	loader := recommend.NewLoader(
		cfg.Data.Root,
		loadOptions(cfg.Data),
		engineConfig(cfg.Recommend),
		logging.WithComponent("recommend"),
		func(e *recommend.Engine) { handler.SetEngine(e) },
	)

	if err := loader.Rebuild(ctx); err != nil {
		var missing *dataset.MissingDataError
		if errors.As(err, &missing) {
			logging.Fatal().
				Str("resource", missing.Resource).
				Str("path", missing.Path).
				Msg("Dataset file not found")
		}
		logging.Fatal().Err(err).Msg("Failed to build recommendation models")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	if cfg.Data.ReloadInterval > 0 {
		tree.AddModelService(services.NewReloadService(loader, services.ReloadServiceConfig{
			Interval: cfg.Data.ReloadInterval,
		}, logging.WithComponent("reload")))
		logging.Info().Dur("interval", cfg.Data.ReloadInterval).Msg("Model reload enabled")
	}

	errCh := tree.ServeBackground(ctx)

	// errCh delivers exactly one value when the root supervisor returns.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor tree error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Reelmatch stopped")
}

// loadOptions maps the data section onto dataset loader options.
func loadOptions(c config.DataConfig) dataset.LoadOptions {
	return dataset.LoadOptions{
		GenreFile:       c.GenreFile,
		ItemFile:        c.ItemFile,
		RatingFile:      c.RatingFile,
		GenreFlagOffset: c.GenreFlagOffset,
	}
}

// engineConfig maps the recommend section onto engine configuration.
func engineConfig(c config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		Alpha:         c.Alpha,
		DefaultK:      c.DefaultK,
		FuzzyCutoff:   c.FuzzyCutoff,
		MinDocFreq:    c.MinDocFreq,
		LikeThreshold: c.LikeThreshold,
		Workers:       c.Workers,
		SearchLimit:   c.SearchLimit,

		ResolveCacheSize: c.ResolveCacheSize,
	}
}
