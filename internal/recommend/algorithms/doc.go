// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package algorithms builds the two similarity models behind the hybrid ranker.
//
// # Models
//
//   - ContentModel: bag-of-words rows over base title and genre tokens,
//     L2-normalized so that a dot product is a cosine similarity.
//   - CollaborativeModel: item-item cosine similarity over the rating matrix
//     after per-item mean-centering restricted to rated cells.
//
// # Thread Safety
//
// Both models are immutable once built and safe for concurrent reads.
package algorithms
