// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Root) == "" {
		return fmt.Errorf("DATA_ROOT is required")
	}
	if c.Data.GenreFile == "" || c.Data.ItemFile == "" || c.Data.RatingFile == "" {
		return fmt.Errorf("data file names must not be empty")
	}
	if c.Data.GenreFlagOffset < 1 {
		return fmt.Errorf("DATA_GENRE_FLAG_OFFSET must be at least 1, got %d", c.Data.GenreFlagOffset)
	}
	if c.Data.ReloadInterval < 0 {
		return fmt.Errorf("DATA_RELOAD_INTERVAL must not be negative, got %s", c.Data.ReloadInterval)
	}
	return nil
}

// validateRecommend validates the hybrid recommender knobs.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.Alpha < 0 || r.Alpha > 1 {
		return fmt.Errorf("RECOMMEND_ALPHA must be between 0 and 1, got %g", r.Alpha)
	}
	if r.FuzzyCutoff < 0 || r.FuzzyCutoff > 1 {
		return fmt.Errorf("RECOMMEND_FUZZY_CUTOFF must be between 0 and 1, got %g", r.FuzzyCutoff)
	}
	if r.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1, got %d", r.DefaultK)
	}
	if r.MinDocFreq < 1 {
		return fmt.Errorf("RECOMMEND_MIN_DOC_FREQ must be at least 1, got %d", r.MinDocFreq)
	}
	if r.LikeThreshold <= 0 {
		return fmt.Errorf("RECOMMEND_LIKE_THRESHOLD must be positive, got %g", r.LikeThreshold)
	}
	if r.Workers < 1 {
		return fmt.Errorf("RECOMMEND_WORKERS must be at least 1, got %d", r.Workers)
	}
	if r.SearchLimit < 1 {
		return fmt.Errorf("RECOMMEND_SEARCH_LIMIT must be at least 1, got %d", r.SearchLimit)
	}
	if r.ResolveCacheSize < 0 {
		return fmt.Errorf("RECOMMEND_RESOLVE_CACHE_SIZE must not be negative, got %d", r.ResolveCacheSize)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

// validateLogging validates log level and format
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled, got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
