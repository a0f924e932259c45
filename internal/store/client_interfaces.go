package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDocumentRepository is the SQLite-backed document collection used for
// the anonymous identity. It never touches the network.
type LocalDocumentRepository interface {
	Create(ctx context.Context, doc models.Document) (models.Document, error)
	Update(ctx context.Context, id string, patch models.DocumentPatch, at time.Time) (models.Document, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	Clear(ctx context.Context) error
}

// OutboxRepository is the durable queue of writes awaiting replay. Entries
// are appended and flagged, never rewritten; a document's newer entry
// supersedes its older ones.
type OutboxRepository interface {
	Enqueue(ctx context.Context, mutation models.PendingMutation) error
	Supersede(ctx context.Context, mutation models.PendingMutation, supersededIDs ...string) error
	ListUnsynced(ctx context.Context) ([]models.PendingMutation, error)
	MarkSynced(ctx context.Context, ids ...string) error
	Retarget(ctx context.Context, fromID, toID string) (int64, error)
	CountUnsynced(ctx context.Context) (int, error)
	PurgeSynced(ctx context.Context) (int64, error)
}

// IDMapRepository remembers which durable id a temporary id became.
type IDMapRepository interface {
	Put(ctx context.Context, temporaryID, durableID string) error
	Lookup(ctx context.Context, temporaryID string) (string, bool, error)
}
