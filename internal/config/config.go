// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the MovieLens files.
type DataConfig struct {
	Root            string `koanf:"root"`
	GenreFile       string `koanf:"genre_file"`
	ItemFile        string `koanf:"item_file"`
	RatingFile      string `koanf:"rating_file"`
	GenreFlagOffset int    `koanf:"genre_flag_offset"`

	// ReloadInterval rebuilds the models from disk periodically. Zero disables.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// RecommendConfig holds the hybrid recommender tuning knobs.
type RecommendConfig struct {
	Alpha         float64 `koanf:"alpha"`
	DefaultK      int     `koanf:"default_k"`
	FuzzyCutoff   float64 `koanf:"fuzzy_cutoff"`
	MinDocFreq    int     `koanf:"min_doc_freq"`
	LikeThreshold float64 `koanf:"like_threshold"`
	Workers       int     `koanf:"workers"`
	SearchLimit   int     `koanf:"search_limit"`

	ResolveCacheSize int `koanf:"resolve_cache_size"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
