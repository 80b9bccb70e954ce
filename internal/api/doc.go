// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api exposes the recommendation engine over HTTP.

Routes (all GET):

	/api/v1/health/live               process is up
	/api/v1/health/ready              models are built and serving
	/api/v1/search?q=&limit=          title search
	/api/v1/recommend/seeds?ids=1,2   rank against seed item ids
	/api/v1/recommend/title?q=        rank against a resolved title
	/api/v1/recommend/user/{userID}   rank against a user's liked items
	/api/v1/catalog/genres            genre catalog
	/api/v1/catalog/stats             catalog and model statistics
	/metrics                          Prometheus exposition

The recommend routes accept k, alpha, genres (comma separated) and explain.
Every JSON response uses the APIResponse envelope. A query that matches
nothing is a 200 with an empty list, never an error.

Global middleware runs first (request ID, real IP, panic recovery, CORS,
metrics), then each route group adds its own rate limit and security headers.
*/
package api
