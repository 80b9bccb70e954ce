// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
	"github.com/tomtom215/reelmatch/internal/recommend/resolver"
)

var (
	// ErrNoDataset is returned by NewEngine when no bundle is supplied.
	ErrNoDataset = errors.New("recommend: dataset bundle is required")

	// ErrModelMisaligned is returned by NewEngine when a model's row count
	// differs from the number of catalog items.
	ErrModelMisaligned = errors.New("recommend: model rows do not match catalog items")
)

// Engine owns the loaded dataset and both similarity models.
// It is immutable after NewEngine returns and safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	bundle   *dataset.Bundle
	content  *algorithms.ContentModel
	collab   *algorithms.CollaborativeModel
	resolver *resolver.Resolver
	resolved *cache.LRU[string, resolution]

	builtAt       time.Time
	buildDuration time.Duration
}

// NewEngine builds the content and collaborative models over bundle.
// It blocks until both models are complete.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ctx context.Context, bundle *dataset.Bundle, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if bundle == nil {
		return nil, ErrNoDataset
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		bundle: bundle,
	}

	start := time.Now()

	docs := make([]string, len(bundle.Items))
	for i := range bundle.Items {
		docs[i] = bundle.Items[i].Document()
	}
	contentCfg := algorithms.DefaultContentConfig()
	contentCfg.MinDocFreq = cfg.MinDocFreq
	e.content = algorithms.BuildContentModel(docs, contentCfg)
	metrics.RecordModelBuild("content", time.Since(start))
	metrics.ContentVocabularySize.Set(float64(e.content.NumFeatures()))

	collabStart := time.Now()
	collabCfg := algorithms.DefaultCollaborativeConfig()
	collabCfg.Workers = cfg.Workers
	collab, err := algorithms.BuildCollaborativeModel(ctx, bundle.Matrix, len(bundle.Items), collabCfg)
	if err != nil {
		return nil, fmt.Errorf("build collaborative model: %w", err)
	}
	e.collab = collab

	if e.content.NumItems() != len(bundle.Items) || e.collab.NumItems() != len(bundle.Items) {
		return nil, fmt.Errorf("%w: content rows %d, collaborative rows %d, items %d",
			ErrModelMisaligned, e.content.NumItems(), e.collab.NumItems(), len(bundle.Items))
	}
	metrics.RecordModelBuild("collaborative", time.Since(collabStart))

	e.resolver = resolver.New(resolver.FromItems(bundle.Items), resolver.Config{
		FuzzyCutoff: cfg.FuzzyCutoff,
	})

	if cfg.ResolveCacheSize > 0 {
		e.resolved = cache.NewLRU[string, resolution](cfg.ResolveCacheSize)
	}

	e.builtAt = time.Now()
	e.buildDuration = e.builtAt.Sub(start)
	metrics.SetCatalogSize(len(bundle.Items), len(bundle.UserIDs), bundle.Stats.RatedCells)

	e.logger.Info().
		Int("items", len(bundle.Items)).
		Int("users", len(bundle.UserIDs)).
		Int("vocabulary", e.content.NumFeatures()).
		Dur("build_duration", e.buildDuration).
		Msg("recommendation models built")

	return e, nil
}

// DefaultOptions returns query options carrying the configured defaults.
func (e *Engine) DefaultOptions() Options {
	return Options{K: e.config.DefaultK, Alpha: e.config.Alpha}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Search returns items whose base title contains the query, falling back to
// the full normalized title when no base title matches. Results follow
// catalog order. A blank query returns no results.
func (e *Engine) Search(query string, limit int) []SearchResult {
	results := make([]SearchResult, 0)
	q := dataset.NormalizeTitle(query)
	if q == "" {
		return results
	}
	if limit <= 0 {
		limit = e.config.SearchLimit
	}

	collect := func(field func(*dataset.Item) string) {
		for i := range e.bundle.Items {
			if len(results) >= limit {
				return
			}
			it := &e.bundle.Items[i]
			if strings.Contains(field(it), q) {
				results = append(results, SearchResult{ItemID: it.ID, Title: it.Title})
			}
		}
	}

	collect(func(it *dataset.Item) string { return it.BaseTitle })
	if len(results) == 0 {
		collect(func(it *dataset.Item) string { return it.NormTitle })
	}
	return results
}

// resolution is a memoized resolver outcome; ok is false for a miss.
type resolution struct {
	title ResolvedTitle
	ok    bool
}

// ResolveTitle maps free-form text to a catalog item.
func (e *Engine) ResolveTitle(query string) (ResolvedTitle, bool) {
	r := e.resolve(query)
	return r.title, r.ok
}

func (e *Engine) resolve(query string) resolution {
	if e.resolved == nil {
		return e.resolveUncached(query)
	}
	return e.resolved.GetOrAdd(query, func() resolution {
		return e.resolveUncached(query)
	})
}

func (e *Engine) resolveUncached(query string) resolution {
	m, ok := e.resolver.Resolve(query)
	if !ok {
		return resolution{}
	}
	return resolution{
		title: ResolvedTitle{
			ItemID: m.ItemID,
			Title:  e.bundle.Items[m.Position].Title,
			Stage:  string(m.Stage),
		},
		ok: true,
	}
}

// RecommendFromSeeds ranks the catalog against the given seed item ids.
// Unknown ids are ignored; with no known seed the result is empty.
func (e *Engine) RecommendFromSeeds(ctx context.Context, seedIDs []int, opts Options) []Recommendation {
	start := time.Now()
	recs := e.recommendIDs(ctx, seedIDs, opts, ModeSeeds)
	metrics.RecordRecommendation(ModeSeeds, len(recs), time.Since(start))
	return recs
}

// RecommendFromTitle resolves query to a single seed and ranks against it.
// An unresolvable title yields an empty result.
func (e *Engine) RecommendFromTitle(ctx context.Context, query string, opts Options) []Recommendation {
	return e.RecommendTitle(ctx, query, opts).Recommendations
}

// RecommendTitle is RecommendFromTitle that also reports which item the
// query resolved to. Resolved is nil when nothing matched.
func (e *Engine) RecommendTitle(ctx context.Context, query string, opts Options) TitleRecommendations {
	start := time.Now()
	out := TitleRecommendations{Query: query}
	if r := e.resolve(query); r.ok {
		resolved := r.title
		out.Resolved = &resolved
		out.Recommendations = e.recommendIDs(ctx, []int{resolved.ItemID}, opts, ModeTitle)
	} else {
		logger := e.requestLogger(ctx, ModeTitle)
		logger.Debug().Str("query", query).Msg("title not resolved")
		out.Recommendations = make([]Recommendation, 0)
	}
	metrics.RecordRecommendation(ModeTitle, len(out.Recommendations), time.Since(start))
	return out
}

// RecommendForUser seeds the ranking with the items the user rated at or
// above threshold. A threshold <= 0 selects the configured default. Unknown
// users and users without qualifying ratings yield an empty result.
func (e *Engine) RecommendForUser(ctx context.Context, userID int, threshold float64, opts Options) []Recommendation {
	start := time.Now()
	recs := e.recommendIDs(ctx, e.LikedItems(userID, threshold), opts, ModeUser)
	metrics.RecordRecommendation(ModeUser, len(recs), time.Since(start))
	return recs
}

// LikedItems returns the ids of items the user rated at or above threshold,
// in catalog order.
func (e *Engine) LikedItems(userID int, threshold float64) []int {
	if threshold <= 0 {
		threshold = e.config.LikeThreshold
	}
	row := e.bundle.UserRatings(userID)
	var liked []int
	for j, v := range row {
		if v != 0 && v >= threshold {
			liked = append(liked, e.bundle.ItemIDs[j])
		}
	}
	return liked
}

func (e *Engine) recommendIDs(ctx context.Context, seedIDs []int, opts Options, mode string) []Recommendation {
	logger := e.requestLogger(ctx, mode)

	seen := make(map[int]struct{}, len(seedIDs))
	seeds := make([]int, 0, len(seedIDs))
	for _, id := range seedIDs {
		pos, ok := e.bundle.ItemPosition(id)
		if !ok {
			continue
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		seeds = append(seeds, pos)
	}
	if len(seeds) == 0 {
		logger.Debug().Int("requested_seeds", len(seedIDs)).Msg("no known seeds")
		return make([]Recommendation, 0)
	}

	opts = opts.normalize(e.config)
	recs := e.rank(seeds, opts)

	logger.Debug().
		Int("seeds", len(seeds)).
		Int("k", opts.K).
		Float64("alpha", opts.Alpha).
		Strs("genres", opts.Genres).
		Int("returned", len(recs)).
		Msg("recommendation complete")

	return recs
}

func (e *Engine) requestLogger(ctx context.Context, mode string) zerolog.Logger {
	l := e.logger.With().Str("mode", mode)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		l = l.Str("request_id", id)
	}
	return l.Logger()
}

// Genres returns the genre catalog in column order.
func (e *Engine) Genres() []string {
	out := make([]string, len(e.bundle.Genres))
	copy(out, e.bundle.Genres)
	return out
}

// ItemCount returns the number of rankable items.
func (e *Engine) ItemCount() int {
	return len(e.bundle.Items)
}

// UserCount returns the number of users in the rating matrix.
func (e *Engine) UserCount() int {
	return len(e.bundle.UserIDs)
}

// Item returns the catalog entry for an item id.
func (e *Engine) Item(id int) (dataset.Item, bool) {
	pos, ok := e.bundle.ItemPosition(id)
	if !ok {
		return dataset.Item{}, false
	}
	return e.bundle.Items[pos], true
}

// Stats summarizes the catalog and models.
func (e *Engine) Stats() Stats {
	return Stats{
		Items:         len(e.bundle.Items),
		Users:         len(e.bundle.UserIDs),
		Ratings:       e.bundle.Stats.RatedCells,
		Genres:        len(e.bundle.Genres),
		Vocabulary:    e.content.NumFeatures(),
		Placeholders:  e.bundle.Stats.Placeholders,
		BuiltAt:       e.builtAt,
		BuildDuration: e.buildDuration,
	}
}
