// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the enrollment statistics API server.

The service stores per-region health and dental enrollment records and
serves aggregated statistics (gender, income, age bracket, and per-year
enrollment) filtered by zip code, state, county, or the whole country.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

Settings can also live in a .env file next to the binary.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default for sqlite: file:enrollment.db)
  - INGEST_KEY (--ingest-key): shared key for write endpoints (optional)
  - LOG_LEVEL, LOG_FORMAT, SHUTDOWN_TIMEOUT

Generate an ingest key:

	go run . --gen-ingest-key

# Startup

Migrations run on every start, then the server listens until SIGINT or
SIGTERM and shuts down gracefully.

# Architecture

  - handlers: HTTP handlers, percentage calculator, aggregator
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - store: Append-only record store with request-scoped sessions
  - db: Connections and embedded migrations
  - auth: Ingest key checks
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
