package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the go-worklog
// agent. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the remote bearer token
	// and the application version.
	App App `envPrefix:"APP_"`

	// Remote holds the address and timeout settings for the cloud backend.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// API holds the listen address of the local HTTP control API.
	API API `envPrefix:"API_"`

	// Sync holds tunables of the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Token is the bearer credential for the remote backend. It may be empty
	// at startup; the auth subsystem can install a fresh token at runtime via
	// the control API.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the semantic version string of the running agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds settings for the outbound connection to the cloud backend.
type Remote struct {
	// BaseURL is the root URL of the remote API (e.g. "https://api.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls. Keeps a
	// sync pass from hanging on an unreachable backend.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// API holds the inbound settings of the local control API the UI talks to.
type API struct {
	// HTTPAddress is the TCP address the control API listens on,
	// in "host:port" format. Bound to loopback by default.
	// Env: API_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Sync holds tunables of the synchronization engine.
type Sync struct {
	// BatchSize is how many unsynced records one push batch reads.
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// MaxRetries bounds transient-failure retries per record.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// Workers bounds how many entity strategies run concurrently in one pass.
	// Env: SYNC_WORKERS
	Workers int `env:"WORKERS"`
}

// Workers contains background worker settings.
type Workers struct {
	// SyncInterval defines how often the background scheduler triggers a pass.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}
