package config

import "time"

// Defaults applied to zero-valued fields of the client and server views.
const (
	DefaultDebounce       = 2 * time.Second
	DefaultLocalLatency   = 150 * time.Millisecond
	DefaultRetryBaseDelay = time.Second
	DefaultRetryAttempts  = 3
	DefaultSyncInterval   = 30 * time.Second
	DefaultProbeInterval  = 5 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultTokenDuration  = 24 * time.Hour
	DefaultTokenIssuer    = "pattern-keeper"
)

func orDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
