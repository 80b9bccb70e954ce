// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_items",
			Help: "Number of items in the loaded catalog (matrix columns)",
		},
	)

	CatalogUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_users",
			Help: "Number of users in the loaded rating matrix",
		},
	)

	CatalogRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_ratings",
			Help: "Number of non-zero cells in the rating matrix",
		},
	)

	DatasetRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_dataset_rows_skipped_total",
			Help: "Malformed dataset rows skipped during loading",
		},
		[]string{"resource"}, // "genre", "item", "rating"
	)

	// Model Metrics
	ModelBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_model_build_duration_seconds",
			Help:    "Time taken to build a similarity model",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"model"}, // "content", "collaborative"
	)

	ContentVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_content_vocabulary_size",
			Help: "Number of vocabulary tokens retained by the content model",
		},
	)

	ModelReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_model_reloads_total",
			Help: "Total number of model rebuilds from disk",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	// Query Metrics
	TitleResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_title_resolutions_total",
			Help: "Title resolutions by matching stage",
		},
		[]string{"stage"}, // "exact", "exact_base", "prefix", "contains", "fuzzy", "none"
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommendations_total",
			Help: "Recommendation queries by mode and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: "ok", "empty"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommendation_duration_seconds",
			Help:    "Time taken to answer a recommendation query",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"mode"}, // "seeds", "title", "user"
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)
)

// SetCatalogSize updates the catalog gauges after a dataset load.
func SetCatalogSize(items, users, ratings int) {
	CatalogItems.Set(float64(items))
	CatalogUsers.Set(float64(users))
	CatalogRatings.Set(float64(ratings))
}

// RecordRowsSkipped counts malformed rows dropped from a dataset resource.
func RecordRowsSkipped(resource string, n int) {
	if n > 0 {
		DatasetRowsSkipped.WithLabelValues(resource).Add(float64(n))
	}
}

// RecordModelBuild records how long a model build took.
func RecordModelBuild(model string, duration time.Duration) {
	ModelBuildDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordReload counts a model rebuild from disk.
func RecordReload(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	ModelReloadsTotal.WithLabelValues(outcome).Inc()
}

// RecordResolution counts a title resolution. An empty stage means no match.
func RecordResolution(stage string) {
	if stage == "" {
		stage = "none"
	}
	TitleResolutions.WithLabelValues(stage).Inc()
}

// RecordRecommendation records a recommendation query and whether it produced results.
func RecordRecommendation(mode string, results int, duration time.Duration) {
	outcome := "ok"
	if results == 0 {
		outcome = "empty"
	}
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
