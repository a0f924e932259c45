// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values that are wrong
// regardless of which binary consumes them. Missing values are left to the
// client and server views, which apply defaults first.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.MaxDocuments < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Retry.MaxAttempts < 0 || cfg.Retry.JitterPercent > 100 {
		return ErrInvalidRetryConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.MaxDocuments < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Autosave.Debounce <= 0 || cfg.Autosave.LocalLatency < 0 {
		return ErrInvalidAutosaveConfigs
	}

	if cfg.Retry.BaseDelay <= 0 || cfg.Retry.MaxAttempts < 1 || cfg.Retry.JitterPercent > 100 {
		return ErrInvalidRetryConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
