// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// pattern-keeper client and the document server. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings: SQLite on the client, PostgreSQL
	// on the document server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the document server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection to the document server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Autosave holds the debounce and local latency settings.
	Autosave Autosave `envPrefix:"AUTOSAVE_"`

	// Retry holds the remote backoff policy.
	Retry Retry `envPrefix:"RETRY_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds token lifecycle and versioning settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint, which clients use as a
	// connectivity probe.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
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

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the SQLite file path on the client or the PostgreSQL connection
	// string on the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxDocuments caps the number of documents kept in the local store.
	// Zero means no cap.
	// Env: STORAGE_DB_MAX_DOCUMENTS
	MaxDocuments int `env:"MAX_DOCUMENTS"`
}

// Adapter holds the client's outbound connection settings.
type Adapter struct {
	// HTTPAddress is the base address of the document server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is an optional bearer token. When set, the client starts signed
	// in and runs the identity migration on startup.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Autosave holds the save scheduling settings.
type Autosave struct {
	// Debounce is the quiet period before an authenticated save is sent.
	// Env: AUTOSAVE_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// LocalLatency is the fixed delay applied to anonymous local saves.
	// Env: AUTOSAVE_LOCAL_LATENCY
	LocalLatency time.Duration `env:"LOCAL_LATENCY"`
}

// Retry holds the remote backoff policy.
type Retry struct {
	// BaseDelay is the delay before the first retry; it doubles per attempt.
	// Env: RETRY_BASE_DELAY
	BaseDelay time.Duration `env:"BASE_DELAY"`

	// MaxAttempts bounds the number of retries.
	// Env: RETRY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// JitterPercent spreads each delay by up to ±JitterPercent.
	// Env: RETRY_JITTER_PERCENT
	JitterPercent uint64 `env:"JITTER_PERCENT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the outbox is drained while online.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is how often connectivity is probed.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is the client log file. Empty means next to the executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
