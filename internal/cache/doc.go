// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides a bounded, thread-safe LRU cache.
//
// The engine uses it to memoize title resolutions: resolving the same free
// text twice against an immutable catalog always yields the same item, and
// the fuzzy stage is the most expensive step of a title query.
package cache
