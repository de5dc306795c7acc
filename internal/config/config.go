// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// blood-press-log application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the persistence backend — the
	// single-file SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// OCR holds configuration for the external vision-model recognition
	// service used to extract readings from cuff photos.
	OCR OCR `envPrefix:"OCR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the SQLite database backend.
type DB struct {
	// DSN is the path to the SQLite database file, optionally with driver
	// parameters (e.g. "blood.db?_journal_mode=WAL&_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// OCR holds settings for the external vision-capable completion API.
type OCR struct {
	// BaseURL is the root URL of the OpenAI-compatible API
	// (default "https://api.openai.com").
	// Env: OCR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the bearer token sent with every recognition request.
	// Must be kept confidential.
	// Env: OCR_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the vision-capable model name used for extraction
	// (default "gpt-4o").
	// Env: OCR_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds a single recognition call. Recognition is
	// fire-once: a timed-out call is never retried.
	// Env: OCR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
