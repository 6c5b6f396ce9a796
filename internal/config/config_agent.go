package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetAgentConfig] when the merged configuration leaves a
// tunable unset.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultBatchSize      = 100
	DefaultMaxRetries     = 2
	DefaultSyncWorkers    = 3
	DefaultAPIAddress     = "127.0.0.1:8710"
)

// AgentApp holds application-level agent settings.
type AgentApp struct {
	// Token is the bearer credential for the remote backend.
	Token string
	// Version is the agent version string.
	Version string
}

// AgentRemote holds network settings for the cloud backend connection.
type AgentRemote struct {
	// BaseURL is the root URL of the remote API.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// AgentDB contains local database connection settings.
type AgentDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// AgentStorage groups local storage backend settings.
type AgentStorage struct {
	// DB holds local database settings.
	DB AgentDB
}

// AgentAPI holds the local control API settings.
type AgentAPI struct {
	// HTTPAddress is the listen address of the control API.
	HTTPAddress string
}

// AgentSync holds synchronization engine tunables.
type AgentSync struct {
	// BatchSize is the unsynced page size per ListUnsynced call.
	BatchSize int
	// MaxRetries bounds transient retries per record.
	MaxRetries int
	// Workers bounds concurrent entity strategies per pass.
	Workers int
}

// AgentWorkers contains background worker settings.
type AgentWorkers struct {
	// SyncInterval defines how often the background scheduler runs.
	SyncInterval time.Duration
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// App contains application-level agent settings.
	App AgentApp
	// Remote contains the cloud backend address and timeouts.
	Remote AgentRemote
	// Storage contains local storage settings.
	Storage AgentStorage
	// API contains control API settings.
	API AgentAPI
	// Sync contains sync engine tunables.
	Sync AgentSync
	// Workers contains background job settings.
	Workers AgentWorkers
}

// GetAgentConfig builds and validates the agent configuration view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields relevant
// to the agent runtime, fills in defaults for unset tunables, and validates
// the result.
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		App: AgentApp{
			Token:   cfg.App.Token,
			Version: cfg.App.Version,
		},
		Remote: AgentRemote{
			BaseURL:        cfg.Remote.BaseURL,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: AgentStorage{
			DB: AgentDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		API: AgentAPI{
			HTTPAddress: cfg.API.HTTPAddress,
		},
		Sync: AgentSync{
			BatchSize:  cfg.Sync.BatchSize,
			MaxRetries: cfg.Sync.MaxRetries,
			Workers:    cfg.Sync.Workers,
		},
		Workers: AgentWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	agentCfg.applyDefaults()

	return agentCfg, agentCfg.validate()
}

func (cfg *AgentConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Sync.BatchSize <= 0 {
		cfg.Sync.BatchSize = DefaultBatchSize
	}
	if cfg.Sync.MaxRetries <= 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.Workers <= 0 {
		cfg.Sync.Workers = DefaultSyncWorkers
	}
	if cfg.API.HTTPAddress == "" {
		cfg.API.HTTPAddress = DefaultAPIAddress
	}
}
