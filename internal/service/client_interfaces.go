package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

// BackendKind names a persistence backend.
type BackendKind string

const (
	BackendLocal  BackendKind = "local"
	BackendRemote BackendKind = "remote"
)

// Backend is the uniform document CRUD contract shared by the local SQLite
// store and the remote document server. Ids passed to Update and Delete are
// always ids the same backend assigned.
type Backend interface {
	Kind() BackendKind

	// Debounce is how long the scheduler waits for edits to settle before
	// saving through this backend. Zero means save right away.
	Debounce() time.Duration

	Create(ctx context.Context, doc models.Document) (models.Document, error)
	Update(ctx context.Context, id string, patch models.DocumentPatch, base models.Document) (models.Document, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Document, error)
}

// CredentialSource exposes the bearer token currently in use, or "".
type CredentialSource interface {
	Token() string
}

// StorageStrategy picks the backend for one save cycle. The choice depends on
// nothing but whether a credential is present.
type StorageStrategy interface {
	Select() Backend
}

// ResultSink receives every persistence outcome. The edit session is the only
// production implementation.
type ResultSink interface {
	Confirm(result models.SaveResult)
}

// Saver accepts edits from the session. *Scheduler implements it.
type Saver interface {
	// Schedule queues doc for saving; patch names the fields the edit changed.
	Schedule(doc models.Document, patch models.DocumentPatch)

	// SaveNow saves doc immediately, bypassing any debounce.
	SaveNow(doc models.Document)

	// Delete removes doc from whichever backend holds it.
	Delete(doc models.Document)
}

// DocumentGuard hands out the per-document slot that keeps remote writes for
// one document from overlapping. *Scheduler implements it.
type DocumentGuard interface {
	// Acquire blocks until nothing is in flight for the document known by
	// any of ids, then holds its slot. release gives the slot back; ids passed
	// to it become further names of the same document.
	Acquire(ids ...string) (release func(aliases ...string))
}

// ClientSyncService replays the outbox against the document server.
type ClientSyncService interface {
	// Drain reads all unsynced outbox entries, coalesces them per document
	// and replays one effective write per document, sequentially.
	Drain(ctx context.Context) (models.SyncReport, error)
}

// ClientSyncJob drains the outbox periodically and on demand.
type ClientSyncJob interface {
	// Start launches the background loop. Any previously running loop is
	// stopped first.
	Start(ctx context.Context)

	// Stop signals the loop to exit and blocks until it has terminated.
	Stop()

	// Trigger asks for a drain as soon as possible. It never blocks.
	Trigger()

	// Run blocks, draining on every tick and trigger, until ctx is done.
	Run(ctx context.Context) error
}

// VersionProber is the unauthenticated endpoint used to check reachability.
type VersionProber interface {
	Version(ctx context.Context) (string, error)
}

// ClientMigrationService moves anonymous documents into the signed-in account.
type ClientMigrationService interface {
	Migrate(ctx context.Context) (models.MigrationReport, error)
}

// ClientAuthService switches the client from the anonymous identity to an
// account.
type ClientAuthService interface {
	// SignIn installs token, lifts a session-expired state and runs the
	// identity migration once.
	SignIn(ctx context.Context, token string) (models.MigrationReport, error)

	// SignedIn reports whether a credential is present.
	SignedIn() bool
}
