// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides layered configuration for Reelmatch.

# Configuration Sources

Configuration is loaded with koanf in three layers, later layers overriding
earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/reelmatch/config.yaml, /etc/reelmatch/config.yml
 3. Environment variables mapped explicitly by envTransformFunc

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown window (default: 10s)

Data:
  - DATA_ROOT: Directory holding the MovieLens 100k files (default: data/ml-100k)
  - DATA_GENRE_FILE, DATA_ITEM_FILE, DATA_RATING_FILE: File names within DATA_ROOT
  - DATA_GENRE_FLAG_OFFSET: First genre flag field in the item file (default: 5)
  - DATA_RELOAD_INTERVAL: Rebuild models from disk on this interval (default: 0, disabled)

Recommendation:
  - RECOMMEND_ALPHA: Content weight in the blend (default: 0.5)
  - RECOMMEND_DEFAULT_K: Result size when a query names none (default: 10)
  - RECOMMEND_FUZZY_CUTOFF: Minimum fuzzy title ratio (default: 0.6)
  - RECOMMEND_MIN_DOC_FREQ: Minimum genre token document frequency (default: 2)
  - RECOMMEND_LIKE_THRESHOLD: Rating counted as a like (default: 4)
  - RECOMMEND_WORKERS: Similarity build goroutines (default: 4)
  - RECOMMEND_SEARCH_LIMIT: Default title search limit (default: 20)
  - RECOMMEND_RESOLVE_CACHE_SIZE: Memoized title resolutions, 0 disables (default: 1024)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
