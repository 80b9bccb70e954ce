// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ModelRebuilder rebuilds and publishes the recommendation models.
// *recommend.Loader satisfies it.
type ModelRebuilder interface {
	Rebuild(ctx context.Context) error
}

// ReloadServiceConfig holds configuration for the reload service.
type ReloadServiceConfig struct {
	// Interval between rebuilds. Non-positive values select one hour.
	Interval time.Duration

	// Timeout bounds a single rebuild. Non-positive values select 10 minutes.
	Timeout time.Duration
}

// ReloadService periodically rebuilds the models from disk under supervision.
type ReloadService struct {
	rebuilder ModelRebuilder
	config    ReloadServiceConfig
	logger    zerolog.Logger
	name      string
}

// NewReloadService creates a new model reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(rebuilder ModelRebuilder, cfg ReloadServiceConfig, logger zerolog.Logger) *ReloadService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}
	return &ReloadService{
		rebuilder: rebuilder,
		config:    cfg,
		logger:    logger.With().Str("service", "model-reload").Logger(),
		name:      "model-reload",
	}
}

// Serve implements suture.Service. It returns only when ctx is canceled.
func (s *ReloadService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("model reload service starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("model reload service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.reload(ctx)
		}
	}
}

func (s *ReloadService) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	if err := s.rebuilder.Rebuild(reloadCtx); err != nil {
		s.logger.Warn().Err(err).Msg("model rebuild failed, keeping current models")
		return
	}
	s.logger.Info().Dur("duration", time.Since(start)).Msg("models rebuilt")
}

// String implements fmt.Stringer for suture log events.
func (s *ReloadService) String() string {
	return s.name
}
