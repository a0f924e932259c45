package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// remoteBackend issues one authenticated call per operation. Retries and the
// outbox are the scheduler's business.
type remoteBackend struct {
	adapter  adapter.DocumentAdapter
	debounce time.Duration

	logger *logger.Logger
}

func NewRemoteBackend(documentAdapter adapter.DocumentAdapter, debounce time.Duration, logger *logger.Logger) Backend {
	return &remoteBackend{
		adapter:  documentAdapter,
		debounce: debounce,
		logger:   logger,
	}
}

func (b *remoteBackend) Kind() BackendKind {
	return BackendRemote
}

func (b *remoteBackend) Debounce() time.Duration {
	return b.debounce
}

func (b *remoteBackend) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	rec, err := b.adapter.Create(ctx, doc.Patch().Request(doc))
	if err != nil {
		return models.Document{}, mapAdapterError(err)
	}
	return rec, nil
}

// Update sends the full document: PUT carries title and content, so fields
// the patch leaves alone are taken from base.
func (b *remoteBackend) Update(ctx context.Context, id string, patch models.DocumentPatch, base models.Document) (models.Document, error) {
	rec, err := b.adapter.Update(ctx, id, patch.Request(base))
	if err != nil {
		return models.Document{}, mapAdapterError(err)
	}
	return rec, nil
}

// Delete treats 404 as already deleted.
func (b *remoteBackend) Delete(ctx context.Context, id string) error {
	err := b.adapter.Delete(ctx, id)
	if errors.Is(err, app.ErrNotFound) {
		b.logger.Debug().Str("func", "remoteBackend.Delete").Str("document_id", id).Msg("document already deleted")
		return nil
	}
	return mapAdapterError(err)
}

func (b *remoteBackend) List(ctx context.Context) ([]models.Document, error) {
	docs, err := b.adapter.List(ctx)
	return docs, mapAdapterError(err)
}
