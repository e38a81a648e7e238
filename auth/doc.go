// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the write endpoints with an optional shared ingest key.

# Ingest Keys

When INGEST_KEY is configured, POST /add/ and POST /add_bulk/ require the
same value in the X-Ingest-Key header:

	err := auth.ValidateIngestKey(r.Header.Get(auth.HeaderIngestKey), cfg.IngestKey)

Comparison is constant time. With no key configured every request passes,
which matches the service's historical open behavior.

# Generating Keys

	key, err := auth.GenerateIngestKey()

Keys are 32 random bytes, URL-safe base64 encoded without padding. The
server prints one with the -gen-ingest-key flag.
*/
package auth
