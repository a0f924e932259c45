package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the document server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token the client starts with, if any.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
	// MaxDocuments caps the local store. Zero means no cap.
	MaxDocuments int
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientAutosave contains save scheduling settings.
type ClientAutosave struct {
	Debounce     time.Duration
	LocalLatency time.Duration
}

// ClientRetry contains the backoff policy for remote writes.
type ClientRetry struct {
	BaseDelay     time.Duration
	MaxAttempts   int
	JitterPercent uint64
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the outbox is drained while online.
	SyncInterval time.Duration
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
}

// ClientLog contains client log output settings.
type ClientLog struct {
	FilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the document server address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Autosave contains debounce and local latency.
	Autosave ClientAutosave
	// Retry contains the remote backoff policy.
	Retry ClientRetry
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains log file settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to the client view, filling unset durations and
// counts with their defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:          cfg.Storage.DB.DSN,
				MaxDocuments: cfg.Storage.DB.MaxDocuments,
			},
		},
		Autosave: ClientAutosave{
			Debounce:     orDuration(cfg.Autosave.Debounce, DefaultDebounce),
			LocalLatency: orDuration(cfg.Autosave.LocalLatency, DefaultLocalLatency),
		},
		Retry: ClientRetry{
			BaseDelay:     orDuration(cfg.Retry.BaseDelay, DefaultRetryBaseDelay),
			MaxAttempts:   orInt(cfg.Retry.MaxAttempts, DefaultRetryAttempts),
			JitterPercent: cfg.Retry.JitterPercent,
		},
		Workers: ClientWorkers{
			SyncInterval:  orDuration(cfg.Workers.SyncInterval, DefaultSyncInterval),
			ProbeInterval: orDuration(cfg.Workers.ProbeInterval, DefaultProbeInterval),
		},
		Log: ClientLog{FilePath: cfg.Log.FilePath},
	}
}
