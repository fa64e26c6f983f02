// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main is the entry point for the CineMatch server.
//
// CineMatch recommends movies from a MovieLens-style dataset using user-based
// collaborative filtering with Pearson correlation. A caller submits a few
// titles with ratings and receives up to ten unseen titles ranked by the
// similarity-weighted ratings of like-minded users.
//
// # Application Architecture
//
//	RootSupervisor ("cinematch")
//	├── MaintenanceSupervisor ("maintenance-layer")
//	│   └── Cache janitor (when the result cache is enabled)
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server (chi router)
//
// Component initialization order:
//
//  1. Configuration: Koanf v2 with defaults, config file and environment
//  2. Logging: zerolog with JSON/console output modes
//  3. Database: in-memory DuckDB reads movies.csv and ratings.csv
//  4. Storage: catalog and rating corpus indexed in memory
//  5. Engine: neighbor selection, Pearson similarity, score aggregation
//  6. Supervisor Tree: Suture v4 process supervision
//  7. HTTP Server: chi router with CORS, rate limiting and Prometheus metrics
//
// # Configuration
//
// Common environment variables:
//   - MOVIES_PATH, RATINGS_PATH: dataset CSV files
//   - HTTP_PORT (default 5000), HTTP_HOST
//   - RECOMMEND_MIN_COMMON_ITEMS, RECOMMEND_MAX_POOL_SIZE, RECOMMEND_MAX_NEIGHBORS
//   - RECOMMEND_CACHE_SIZE (0 disables the result cache)
//   - LOG_LEVEL, LOG_FORMAT
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
// connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.
//
// # Example Usage
//
//	export MOVIES_PATH=./ml-latest-small/movies.csv
//	export RATINGS_PATH=./ml-latest-small/ratings.csv
//	./cinematch
//
//	curl -s localhost:5000/api/v1/recommendations \
//	  -d '{"preferences":[{"title":"Toy Story","year":"1995","rating":5}]}'
package main
