package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type stubProber struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (p *stubProber) Version(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return "1.0.0", p.err
}

func (p *stubProber) set(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *stubProber) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestConnectivityProbe_Probe(t *testing.T) {
	prober := &stubProber{}
	c := NewConnectivity(models.SyncOffline, logger.Nop())
	probe := NewConnectivityProbe(prober, c, time.Second, logger.Nop())
	ctx := context.Background()

	probe.Probe(ctx)
	assert.Equal(t, models.SyncSyncing, c.Status(), "a reachable server starts a drain")

	c.Drained(0)
	prober.set(fmt.Errorf("get: %w", adapter.ErrTransport))
	probe.Probe(ctx)
	assert.Equal(t, models.SyncOffline, c.Status())

	prober.set(adapter.ErrServerError)
	probe.Probe(ctx)
	assert.Equal(t, models.SyncSyncing, c.Status(), "any answer counts as reachable")
}

func TestConnectivityProbe_RunProbesImmediately(t *testing.T) {
	prober := &stubProber{}
	c := NewConnectivity(models.SyncOffline, logger.Nop())
	probe := NewConnectivityProbe(prober, c, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- probe.Run(ctx) }()

	require.Eventually(t, func() bool { return prober.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, c.Online())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestConnectivityProbe_RunTicks(t *testing.T) {
	prober := &stubProber{}
	c := NewConnectivity(models.SyncOffline, logger.Nop())
	probe := NewConnectivityProbe(prober, c, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	require.NoError(t, probe.Run(ctx))

	assert.GreaterOrEqual(t, prober.count(), 3)
}
