// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: UUID-based request tracking, propagated to the logging context
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request counters, latency and in-flight gauges
  - Compression: gzip for clients that accept it

All middleware use the func(http.Handler) http.Handler shape so they can be
passed directly to chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Metrics are labeled with the chi route pattern rather than the raw path so
that path parameters such as user ids do not create unbounded label sets.
*/
package middleware
