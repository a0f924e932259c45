package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/backoff"
	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/internal/validators"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// ClientServices wires the offline-first engine of the client.
type ClientServices struct {
	Session      *Session
	Scheduler    *Scheduler
	Connectivity *Connectivity
	Strategy     StorageStrategy
	SyncService  ClientSyncService
	SyncJob      ClientSyncJob
	Probe        *ConnectivityProbe
	Migration    ClientMigrationService
	AuthService  ClientAuthService
}

func NewClientServices(storages *store.ClientStorages, documentAdapter adapter.DocumentAdapter, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	validator, err := validators.NewDocumentValidator()
	if err != nil {
		return nil, fmt.Errorf("document validator: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	connectivity := NewConnectivity(models.SyncOffline, logger)
	registry := NewIDRegistry(storages.IDMapRepository, storages.OutboxRepository, logger)

	local := NewLocalBackend(storages.DocumentRepository, ids, cfg.Autosave.LocalLatency, logger)
	remote := NewRemoteBackend(documentAdapter, cfg.Autosave.Debounce, logger)
	strategy := NewStorageStrategy(local, remote, documentAdapter)

	policy := backoff.NewPolicy(cfg.Retry.BaseDelay, cfg.Retry.MaxAttempts, backoff.WithJitterPercent(cfg.Retry.JitterPercent))

	session := NewSession(ids, logger)
	scheduler := NewScheduler(
		strategy,
		registry,
		newOutboxQueue(storages.OutboxRepository, documentAdapter, ids),
		connectivity,
		policy,
		validator,
		session,
		logger,
	)
	session.SetSaver(scheduler)

	syncSvc := NewClientSyncService(storages.OutboxRepository, registry, remote, documentAdapter, connectivity, session, scheduler, logger)
	syncJob := NewClientSyncJob(syncSvc, connectivity, cfg.Workers.SyncInterval, logger)
	scheduler.SetDrainRequester(syncJob.Trigger)
	migration := NewMigrationService(storages.DocumentRepository, remote, registry, scheduler, logger)

	connectivity.OnChange(func(prev, next models.SyncStatus) {
		session.SetSyncStatus(next)
		if prev == models.SyncOffline && next == models.SyncSyncing {
			syncJob.Trigger()
		}
	})

	if token := documentAdapter.Token(); token != "" {
		if accountID, err := utils.ParseAccountIDFromJWT(token); err == nil {
			session.SetIdentity(accountID)
		}
	}

	return &ClientServices{
		Session:      session,
		Scheduler:    scheduler,
		Connectivity: connectivity,
		Strategy:     strategy,
		SyncService:  syncSvc,
		SyncJob:      syncJob,
		Probe:        NewConnectivityProbe(documentAdapter, connectivity, cfg.Workers.ProbeInterval, logger),
		Migration:    migration,
		AuthService:  NewClientAuthService(documentAdapter, scheduler, session, migration, syncJob, logger),
	}, nil
}

// Load fills the known list from the backend the current identity uses.
func (s *ClientServices) Load(ctx context.Context) error {
	docs, err := s.Strategy.Select().List(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	s.Session.ReplaceKnown(docs, nil)
	return nil
}

// Close sends every pending save, then stops timers and the sync loop.
func (s *ClientServices) Close() {
	s.Scheduler.Flush()
	s.Scheduler.Close()
	s.SyncJob.Stop()
}
