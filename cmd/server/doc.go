// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch serves hybrid movie recommendations over the MovieLens 100k
dataset: a genre and title content model blended with an item-item
collaborative model.

# Startup

 1. Configuration: defaults, optional config.yaml, environment (koanf v2)
 2. Logging: zerolog with the configured level and format
 3. Dataset: u.genre, u.item and u.data from DATA_ROOT; a missing file is fatal
 4. Models: content and collaborative similarity matrices
 5. HTTP server under the suture supervisor tree
 6. Model reload service when DATA_RELOAD_INTERVAL is set

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

	export DATA_ROOT=./data/ml-100k
	export HTTP_PORT=8000
	./reelmatch

	curl 'localhost:8000/api/v1/recommend/title?q=toy%20story&k=5&explain=true'
*/
package main
