package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// localBackend stores the anonymous identity's documents in SQLite. Every
// call waits a fixed latency first so the UI shows the same saving states it
// would against the server.
type localBackend struct {
	repo    store.LocalDocumentRepository
	ids     utils.IDGenerator
	latency time.Duration
	clock   func() time.Time

	logger *logger.Logger
}

func NewLocalBackend(repo store.LocalDocumentRepository, ids utils.IDGenerator, latency time.Duration, logger *logger.Logger) Backend {
	return &localBackend{
		repo:    repo,
		ids:     ids,
		latency: latency,
		clock:   time.Now,
		logger:  logger,
	}
}

func (b *localBackend) Kind() BackendKind {
	return BackendLocal
}

func (b *localBackend) Debounce() time.Duration {
	return 0
}

func (b *localBackend) wait(ctx context.Context) error {
	if b.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(b.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Create stores doc under a fresh synthetic id.
func (b *localBackend) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	if err := b.wait(ctx); err != nil {
		return models.Document{}, err
	}

	rec := doc.Clone()
	rec.ID = models.LocalIDPrefix + b.ids.Generate()
	rec.Owner = models.AnonymousOwner
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = b.clock()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}

	saved, err := b.repo.Create(ctx, rec)
	if err != nil {
		b.logger.Err(err).Str("func", "localBackend.Create").Str("document_id", doc.ID).Msg("local create failed")
		return models.Document{}, mapStoreError(err)
	}
	return saved, nil
}

// Update stamps the stored record with base.UpdatedAt so the local copy and
// the optimistic snapshot carry the same timestamp.
func (b *localBackend) Update(ctx context.Context, id string, patch models.DocumentPatch, base models.Document) (models.Document, error) {
	if err := b.wait(ctx); err != nil {
		return models.Document{}, err
	}

	at := base.UpdatedAt
	if at.IsZero() {
		at = b.clock()
	}

	saved, err := b.repo.Update(ctx, id, patch, at)
	if err != nil {
		b.logger.Err(err).Str("func", "localBackend.Update").Str("document_id", id).Msg("local update failed")
		return models.Document{}, mapStoreError(err)
	}
	return saved, nil
}

// Delete treats a missing record as already deleted.
func (b *localBackend) Delete(ctx context.Context, id string) error {
	if err := b.wait(ctx); err != nil {
		return err
	}

	err := b.repo.Delete(ctx, id)
	if errors.Is(err, app.ErrNotFound) {
		return nil
	}
	return mapStoreError(err)
}

func (b *localBackend) List(ctx context.Context) ([]models.Document, error) {
	docs, err := b.repo.List(ctx)
	return docs, mapStoreError(err)
}
