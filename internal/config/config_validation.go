// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package config

// validate checks that the final [AgentConfig] satisfies all invariants the
// agent relies on at startup. Defaults have already been applied, so only the
// settings without a sensible default are checked here.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.API.HTTPAddress == "" {
		return ErrInvalidAPIConfigs
	}

	return nil
}
