package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type migrationService struct {
	local    store.LocalDocumentRepository
	remote   Backend
	registry *IDRegistry
	guard    DocumentGuard

	running atomic.Bool

	logger *logger.Logger
}

func NewMigrationService(local store.LocalDocumentRepository, remote Backend, registry *IDRegistry, guard DocumentGuard, logger *logger.Logger) ClientMigrationService {
	return &migrationService{
		local:    local,
		remote:   remote,
		registry: registry,
		guard:    guard,
		logger:   logger,
	}
}

// Migrate re-creates every local document remotely, one at a time. On full
// success the local store is cleared; otherwise only the failed documents
// stay in it for the next attempt. The remote list is authoritative
// afterwards: Known is that list plus the documents left behind.
//
// A document that already transitioned to a server id is updated instead of
// created again.
func (m *migrationService) Migrate(ctx context.Context) (models.MigrationReport, error) {
	if !m.running.CompareAndSwap(false, true) {
		return models.MigrationReport{}, ErrMigrationInProgress
	}
	defer m.running.Store(false)

	log := m.logger.With().Str("func", "migrationService.Migrate").Logger()

	report := models.MigrationReport{
		Migrated: []models.Document{},
		Failed:   []models.Document{},
		Renamed:  make(map[string]string),
	}

	docs, err := m.local.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list local documents: %w", err)
	}

	var abort error
	for _, doc := range docs {
		if abort != nil {
			report.Failed = append(report.Failed, doc)
			continue
		}

		rec, err := m.migrateOne(ctx, doc)
		if err != nil {
			log.Err(err).Str("document_id", doc.ID).Msg("document not migrated")
			report.Failed = append(report.Failed, doc)
			if errors.Is(err, app.ErrAuthExpired) || errors.Is(err, context.Canceled) {
				abort = err
			}
			continue
		}

		report.Migrated = append(report.Migrated, rec)
		report.Renamed[doc.ID] = rec.ID
	}

	if err := m.cleanup(ctx, report); err != nil {
		return report, err
	}

	remoteDocs, err := m.remote.List(ctx)
	if err != nil {
		report.Known = append(append([]models.Document{}, report.Migrated...), report.Failed...)
		return report, errors.Join(abort, fmt.Errorf("reload remote documents: %w", err))
	}
	report.Known = append(remoteDocs, report.Failed...)

	log.Info().
		Int("migrated", len(report.Migrated)).
		Int("failed", len(report.Failed)).
		Int("known", len(report.Known)).
		Msg("identity migration finished")

	return report, abort
}

// migrateOne holds the document's slot so an autosave of the same document
// cannot create it remotely a second time.
func (m *migrationService) migrateOne(ctx context.Context, doc models.Document) (rec models.Document, err error) {
	release := m.guard.Acquire(doc.ID)
	defer func() { release(rec.ID) }()

	target := m.registry.Resolve(ctx, doc.ID)
	if models.IsRemoteID(target) {
		return m.remote.Update(ctx, target, doc.Patch(), doc)
	}

	rec, err = m.remote.Create(ctx, doc)
	if err != nil {
		return models.Document{}, err
	}

	if _, err := m.registry.Record(ctx, doc.ID, rec.ID); err != nil {
		m.logger.Err(err).Str("func", "migrationService.migrateOne").Str("document_id", doc.ID).Msg("failed to record id transition")
	}
	return rec, nil
}

func (m *migrationService) cleanup(ctx context.Context, report models.MigrationReport) error {
	if len(report.Failed) == 0 {
		if err := m.local.Clear(ctx); err != nil {
			return fmt.Errorf("clear local documents: %w", err)
		}
		return nil
	}

	for from := range report.Renamed {
		if err := m.local.Delete(ctx, from); err != nil && !errors.Is(err, app.ErrNotFound) {
			return fmt.Errorf("drop migrated local document %s: %w", from, err)
		}
	}
	return nil
}
