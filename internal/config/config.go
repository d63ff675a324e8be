// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the journal
// client. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version.
	App App `envPrefix:"APP_"`

	// Backend holds the remote API origin and transport settings.
	// This is the single source of truth for the backend origin: every
	// URL the client constructs, media URLs included, derives from it.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the environment and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds settings for the remote journal API.
type Backend struct {
	// BaseURL is the backend origin, scheme and host only
	// (e.g. "https://api.example.com"). Path segments are owned by the
	// adapter.
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// MediaPathPrefix is the server path under which uploaded journal
	// media is served (e.g. "/api/journals/media").
	// Env: BACKEND_MEDIA_PATH_PREFIX
	MediaPathPrefix string `env:"MEDIA_PATH_PREFIX"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite session database.
type DB struct {
	// DSN is the SQLite file path used to persist the auth session
	// between runs (e.g. "~/.journal/session.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// BadgeRefreshInterval defines how often the pending friend-request
	// counter is refreshed while the client is running.
	// Env: WORKERS_BADGE_REFRESH_INTERVAL
	BadgeRefreshInterval time.Duration `env:"BADGE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the client configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. .env file (if present)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
