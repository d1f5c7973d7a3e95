// SPDX-License-Identifier: MIT

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tucker-sync server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token parameters and the accepted application keys.
	Auth Auth `envPrefix:"AUTH_"`

	// Sync holds the engine policy knobs: conflict resolution policy,
	// download batch ceiling, tombstone retention, and the registered
	// object classes.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds authentication glue settings. The engine itself never sees
// credentials; these values configure the request-level checks that run
// before any engine logic.
type Auth struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWTs.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long a newly issued JWT remains valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AppKeys is the set of accepted application keys. A request whose
	// X-App-Key header is not in this set is rejected before anything else.
	AppKeys []string `env:"APP_KEYS" envSeparator:","`
}

// Sync holds the engine policy knobs.
type Sync struct {
	// ConflictPolicy selects how update conflicts are resolved:
	// "highest-version-wins" (default) or "server-wins".
	ConflictPolicy string `env:"CONFLICT_POLICY"`

	// DownloadBatchLimit caps the number of objects returned by one
	// syncDown page. Zero selects the default of 500.
	DownloadBatchLimit uint64 `env:"DOWNLOAD_BATCH_LIMIT"`

	// Classes lists the registered object classes. Classes are configured
	// via the JSON file only; an empty list is rejected by validation.
	Classes []ObjectClass
}

// ObjectClass registers one application-defined object class with the
// engine.
type ObjectClass struct {
	// Name is the class identifier used in sync URLs and storage rows.
	Name string `json:"name"`

	// Shareable marks the class as servable through the unauthenticated
	// base-data download.
	Shareable bool `json:"shareable"`

	// PayloadSchema is an optional JSON Schema document; when present,
	// uploaded payloads of this class are validated against it at the
	// transport boundary.
	PayloadSchema string `json:"payload_schema,omitempty"`
}

// Storage groups the persistence configuration.
type Storage struct {
	// DB holds the server-side relational database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds relational database connection settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// PurgeInterval is how often the tombstone purger runs. Zero disables
	// the worker.
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`

	// PurgeRetention is the minimum age a tombstone must reach before it is
	// physically removed.
	PurgeRetention time.Duration `env:"PURGE_RETENTION"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
//
// Precedence, highest first: environment variables, command-line flags, JSON
// file. The JSON file is consulted only when a path was provided via the
// CONFIG variable or the -c/-config flag.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
