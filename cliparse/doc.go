// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:enrollment.db,
    required for postgres)
  - IngestKey: shared key required on write endpoints (optional)
  - LogLevel: slog level (default: info)
  - LogFormat: text or json (default: text)
  - ShutdownTimeout: graceful shutdown budget (default: 10s)

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	--ingest-key       Ingest key
	--log-level        Log level
	--log-format       Log format
	--shutdown-timeout Shutdown timeout (Go duration)
	--env-file         .env file path (default: .env)
	--gen-ingest-key   Print a new ingest key and exit

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	INGEST_KEY       → --ingest-key
	LOG_LEVEL        → --log-level
	LOG_FORMAT       → --log-format
	SHUTDOWN_TIMEOUT → --shutdown-timeout

Before reading the environment, the .env file is loaded with godotenv.
Variables already set in the process environment are not overwritten, and
a missing file is ignored.

CLI flags take precedence over environment variables.
*/
package cliparse
