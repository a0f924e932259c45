package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings for the document server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ServerHTTP holds the listen address and request timeout.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerConfig is the document server's view of [StructuredConfig].
type ServerConfig struct {
	App    ServerApp
	Server ServerHTTP
	// DSN is the PostgreSQL connection string.
	DSN string
}

// GetServerConfig loads the merged configuration and returns the validated
// server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg to the server view.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   orString(cfg.App.TokenIssuer, DefaultTokenIssuer),
			TokenDuration: orDuration(cfg.App.TokenDuration, DefaultTokenDuration),
			Version:       cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: orDuration(cfg.Server.RequestTimeout, DefaultRequestTimeout),
		},
		DSN: cfg.Storage.DB.DSN,
	}
}
