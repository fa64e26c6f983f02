// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for CineMatch.

Configuration is loaded with Koanf v2 in three layers, later layers
overriding earlier ones:

 1. Built-in defaults (structs provider over defaultConfig)
 2. Optional YAML file (config.yaml, /etc/cinematch/config.yaml, or CONFIG_PATH)
 3. Environment variables, mapped explicitly by envTransformFunc

# Configuration Structure

  - Dataset: CSV locations of the movie catalog and rating corpus
  - Database: DuckDB tuning for the CSV loader
  - Recommend: Neighbor selection thresholds and result limits
  - Server: HTTP listener settings
  - Security: CORS origins and per-IP rate limiting
  - Logging: Level, format and caller annotation

# Environment Variables

Dataset:
  - MOVIES_PATH: Movie catalog CSV (default: data/movies.csv)
  - RATINGS_PATH: Rating corpus CSV (default: data/ratings.csv)

Database:
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: DuckDB worker threads, 0 for NumCPU (default: 0)

Recommend:
  - RECOMMEND_MIN_COMMON_ITEMS: Minimum co-rated items per neighbor (default: 5)
  - RECOMMEND_MAX_POOL_SIZE: Neighbor pool cap before scoring (default: 100)
  - RECOMMEND_MAX_NEIGHBORS: Neighbors kept after scoring (default: 50)
  - RECOMMEND_RESULTS: Recommendations returned per request, 1-10 (default: 10)
  - RECOMMEND_MAX_PREFERENCES: Preferences accepted per request (default: 100)
  - RECOMMEND_EXCLUDE_RATED: Drop titles the caller already rated (default: true)
  - RECOMMEND_TIMEOUT: Per-request computation budget (default: 10s)
  - RECOMMEND_CACHE_SIZE: LRU result cache entries, 0 disables (default: 0)
  - RECOMMEND_CACHE_TTL: Result cache entry lifetime (default: 10m)

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Read and write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development or production (default: development)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Thread Safety

Config is immutable after Load and safe for concurrent reads.
*/
package config
