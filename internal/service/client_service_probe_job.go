package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
)

const defaultProbeInterval = 5 * time.Second

// ConnectivityProbe polls the version endpoint and feeds the result into
// [Connectivity].
type ConnectivityProbe struct {
	prober       VersionProber
	connectivity *Connectivity
	interval     time.Duration

	logger *logger.Logger
}

func NewConnectivityProbe(prober VersionProber, connectivity *Connectivity, interval time.Duration, logger *logger.Logger) *ConnectivityProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &ConnectivityProbe{
		prober:       prober,
		connectivity: connectivity,
		interval:     interval,
		logger:       logger,
	}
}

// Run probes once right away and then every interval until ctx is done.
func (p *ConnectivityProbe) Run(ctx context.Context) error {
	p.Probe(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			p.Probe(ctx)
		}
	}
}

// Probe makes one request. Any answer from the server counts as reachable,
// even an error status; only transport failures count as a loss.
func (p *ConnectivityProbe) Probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	version, err := p.prober.Version(probeCtx)
	if ctx.Err() != nil {
		return
	}
	if err != nil && isConnectivityLoss(err) {
		p.logger.Debug().Err(err).Msg("document server unreachable")
		p.connectivity.Lost()
		return
	}

	if p.connectivity.Restored() {
		p.logger.Info().Str("server_version", version).Msg("document server reachable again")
	}
}
