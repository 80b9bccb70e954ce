// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the hybrid movie recommendation engine.
//
// # Architecture
//
// An Engine is built once from a dataset.Bundle and owns two models:
//
//   - Content: bag-of-words rows over each item's base title and genres
//   - Collaborative: item-item cosine similarity over mean-centered ratings
//
// A query blends both per candidate item:
//
//	score = alpha * content + (1 - alpha) * collaborative
//
// then removes the seeds, applies an any-of genre filter and keeps the top k
// by score, breaking ties by catalog position.
//
// # Query Surface
//
//   - Search: substring title search
//   - RecommendFromSeeds: rank against explicit item ids
//   - RecommendFromTitle: resolve free text to one seed, then rank
//   - RecommendForUser: seed with a user's own highly rated items
//
// Lookups that find nothing (unknown title, unknown user, no surviving seeds,
// a genre filter nothing satisfies) return an empty non-nil slice, never an
// error.
//
// # Usage
//
//	bundle, err := dataset.Load(root, dataset.DefaultLoadOptions())
//	if err != nil {
//	    return err
//	}
//	engine, err := recommend.NewEngine(ctx, bundle, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	opts := engine.DefaultOptions()
//	opts.K = 5
//	opts.Explain = true
//	recs := engine.RecommendFromTitle(ctx, "toy story", opts)
//
// # Thread Safety
//
// The engine is immutable after construction. Queries are pure reads and
// may run concurrently without locking. Results are never cached.
package recommend
