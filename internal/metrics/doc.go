// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus instrumentation for Reelmatch.

All collectors are registered with the default registry through promauto and
exposed by the HTTP server at /metrics.

# Metric Families

Dataset and models:
  - reelmatch_catalog_items, reelmatch_catalog_users, reelmatch_catalog_ratings
  - reelmatch_dataset_rows_skipped_total{resource}
  - reelmatch_model_build_duration_seconds{model}
  - reelmatch_content_vocabulary_size
  - reelmatch_model_reloads_total{outcome}

Queries:
  - reelmatch_title_resolutions_total{stage}
  - reelmatch_recommendations_total{mode,outcome}
  - reelmatch_recommendation_duration_seconds{mode}

HTTP:
  - reelmatch_api_requests_total{method,endpoint,status}
  - reelmatch_api_request_duration_seconds{method,endpoint}
  - reelmatch_api_active_requests

# Usage

	start := time.Now()
	recs := engine.RecommendFromSeeds(ctx, ids, opts)
	metrics.RecordRecommendation("seeds", len(recs), time.Since(start))
*/
package metrics
