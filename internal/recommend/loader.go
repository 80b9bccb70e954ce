// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Loader reads the dataset from disk and builds engines over it.
type Loader struct {
	root    string
	opts    dataset.LoadOptions
	config  *Config
	logger  zerolog.Logger
	publish func(*Engine)
}

// NewLoader creates a loader for the dataset under root. publish, if set,
// receives every engine built by Rebuild.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(root string, opts dataset.LoadOptions, cfg *Config, logger zerolog.Logger, publish func(*Engine)) *Loader {
	return &Loader{
		root:    root,
		opts:    opts,
		config:  cfg,
		logger:  logger,
		publish: publish,
	}
}

// Load reads the dataset and builds a new engine. Missing files surface as
// *dataset.MissingDataError.
func (l *Loader) Load(ctx context.Context) (*Engine, error) {
	bundle, err := dataset.Load(l.root, l.opts)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(ctx, bundle, l.config, l.logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}

// Rebuild loads a fresh engine and publishes it. On failure nothing is
// published and the previous engine stays in service.
func (l *Loader) Rebuild(ctx context.Context) error {
	engine, err := l.Load(ctx)
	metrics.RecordReload(err)
	if err != nil {
		return err
	}
	if l.publish != nil {
		l.publish(engine)
	}
	return nil
}
