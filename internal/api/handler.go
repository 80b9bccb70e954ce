// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommender is the engine surface the handlers depend on.
// *recommend.Engine satisfies it.
type Recommender interface {
	DefaultOptions() recommend.Options
	Search(query string, limit int) []recommend.SearchResult
	RecommendFromSeeds(ctx context.Context, seedIDs []int, opts recommend.Options) []recommend.Recommendation
	RecommendTitle(ctx context.Context, query string, opts recommend.Options) recommend.TitleRecommendations
	RecommendForUser(ctx context.Context, userID int, threshold float64, opts recommend.Options) []recommend.Recommendation
	LikedItems(userID int, threshold float64) []int
	Genres() []string
	Stats() recommend.Stats
}

var _ Recommender = (*recommend.Engine)(nil)

// Handler serves the HTTP API. Without an engine it reports not ready and
// rejects catalog and recommendation requests with 503.
type Handler struct {
	engine    atomic.Pointer[engineRef]
	startTime time.Time
}

type engineRef struct {
	Recommender
}

// NewHandler creates a handler backed by engine, which may be nil.
func NewHandler(engine Recommender) *Handler {
	h := &Handler{startTime: time.Now()}
	h.SetEngine(engine)
	return h
}

// SetEngine atomically replaces the engine. In-flight requests finish on the
// engine they started with.
func (h *Handler) SetEngine(engine Recommender) {
	if engine == nil {
		h.engine.Store(nil)
		return
	}
	h.engine.Store(&engineRef{engine})
}

// current returns the engine or nil when none is loaded.
func (h *Handler) current() Recommender {
	if ref := h.engine.Load(); ref != nil {
		return ref.Recommender
	}
	return nil
}
