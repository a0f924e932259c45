package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
)

const defaultSyncInterval = 30 * time.Second

type clientSyncJob struct {
	syncService  ClientSyncService
	connectivity *Connectivity
	interval     time.Duration
	trigger      chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job that drains the outbox every interval while
// online and whenever Trigger is called. If interval is zero or negative it
// defaults to 30 seconds. The job is idle until Start or Run is called.
func NewClientSyncJob(syncService ClientSyncService, connectivity *Connectivity, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &clientSyncJob{
		syncService:  syncService,
		connectivity: connectivity,
		interval:     interval,
		trigger:      make(chan struct{}, 1),
		logger:       logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running loop, then
// runs Run in a background goroutine until ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		_ = j.Run(jobCtx)
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Trigger implements ClientSyncJob. Triggers arriving while one is already
// waiting collapse into it.
func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Run implements ClientSyncJob and workers.Worker.
func (j *clientSyncJob) Run(ctx context.Context) error {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if j.connectivity.Online() {
				j.drain(ctx)
			}
		case <-j.trigger:
			j.drain(ctx)
		}
	}
}

func (j *clientSyncJob) drain(ctx context.Context) {
	report, err := j.syncService.Drain(ctx)
	switch {
	case err == nil:
		if report.Replayed+report.Skipped+report.Failed > 0 {
			j.logger.Info().
				Int("replayed", report.Replayed).
				Int("skipped", report.Skipped).
				Int("failed", report.Failed).
				Int("pending", report.Pending).
				Msg("outbox drained")
		}
	case errors.Is(err, app.ErrOffline), errors.Is(err, ErrNotSignedIn), errors.Is(err, context.Canceled):
	default:
		j.logger.Err(err).Str("func", "clientSyncJob.drain").Msg("outbox drain failed")
	}
}
