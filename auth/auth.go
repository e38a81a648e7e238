// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// HeaderIngestKey carries the shared key on write requests
const HeaderIngestKey = "X-Ingest-Key"

var (
	ErrInvalidIngestKey = errors.New("invalid ingest key")
	ErrMissingIngestKey = errors.New("missing ingest key")
)

// GenerateIngestKey creates a random key suitable for INGEST_KEY
func GenerateIngestKey() (string, error) {
	b := make([]byte, 32) // 256 bits
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate ingest key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateIngestKey checks a provided key against the configured one.
// An empty expected key disables the check.
func ValidateIngestKey(provided, expected string) error {
	if expected == "" {
		return nil
	}
	if provided == "" {
		return ErrMissingIngestKey
	}
	if !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidIngestKey
	}
	return nil
}
