// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Alpha is the default blend weight of the content score.
	// The collaborative score receives 1 - Alpha.
	Alpha float64 `json:"alpha"`

	// DefaultK is used when a query does not ask for a result count.
	DefaultK int `json:"default_k"`

	// FuzzyCutoff is the minimum ratio accepted by fuzzy title matching.
	FuzzyCutoff float64 `json:"fuzzy_cutoff"`

	// MinDocFreq drops content tokens that appear in fewer items.
	MinDocFreq int `json:"min_doc_freq"`

	// LikeThreshold is the rating at or above which a user's own ratings
	// become seeds for user recommendations.
	LikeThreshold float64 `json:"like_threshold"`

	// Workers is the number of goroutines building the collaborative model.
	Workers int `json:"workers"`

	// SearchLimit is the default number of title search results.
	SearchLimit int `json:"search_limit"`

	// ResolveCacheSize bounds the memoized title resolutions. Zero disables
	// the cache.
	ResolveCacheSize int `json:"resolve_cache_size"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Alpha:         0.5,
		DefaultK:      10,
		FuzzyCutoff:   0.6,
		MinDocFreq:    2,
		LikeThreshold: 4.0,
		Workers:       4,
		SearchLimit:   20,

		ResolveCacheSize: 1024,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %f", c.Alpha)
	}
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if math.IsNaN(c.FuzzyCutoff) || c.FuzzyCutoff < 0 || c.FuzzyCutoff > 1 {
		return fmt.Errorf("fuzzy_cutoff must be in [0, 1], got %f", c.FuzzyCutoff)
	}
	if c.MinDocFreq < 1 {
		return fmt.Errorf("min_doc_freq must be positive, got %d", c.MinDocFreq)
	}
	if c.LikeThreshold <= 0 {
		return fmt.Errorf("like_threshold must be positive, got %f", c.LikeThreshold)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.SearchLimit < 1 {
		return fmt.Errorf("search_limit must be positive, got %d", c.SearchLimit)
	}
	if c.ResolveCacheSize < 0 {
		return fmt.Errorf("resolve_cache_size must be non-negative, got %d", c.ResolveCacheSize)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
