// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and applies schema migrations.

# Database Types

Two backends are supported:

  - sqlite (default): modernc.org/sqlite, pure Go, file DSN such as file:enrollment.db
  - postgres: github.com/lib/pq

Open verifies the connection with a ping:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

SQLite DSNs without explicit pragmas get busy_timeout(5000) and WAL journaling.

# Migrations

Migrations are embedded SQL files run with golang-migrate, one directory
per dialect:

	migrations/postgres/000001_create_enrollment_data.up.sql
	migrations/sqlite/000001_create_enrollment_data.up.sql

Migrate is safe to call on every start; it returns the current version:

	version, err := db.Migrate(cfg.DatabaseType, cfg.DatabaseURL)

# Tables

  - enrollment_data: one row per submitted zip/state/county/year record,
    with raw counts and the ten derived percentages

# Indexes

  - enrollment_data.zip_code
  - enrollment_data.state
  - enrollment_data.county
*/
package db
