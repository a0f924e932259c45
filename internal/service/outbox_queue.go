package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// outboxQueue turns a write the scheduler could not deliver into an outbox
// entry, recording the request it would have sent.
type outboxQueue struct {
	repo    store.OutboxRepository
	adapter adapter.DocumentAdapter
	ids     utils.IDGenerator
	clock   func() time.Time
}

func newOutboxQueue(repo store.OutboxRepository, documentAdapter adapter.DocumentAdapter, ids utils.IDGenerator) *outboxQueue {
	return &outboxQueue{repo: repo, adapter: documentAdapter, ids: ids, clock: time.Now}
}

// Enqueue queues kind for targetID. base is the full optimistic snapshot;
// patch the fields changed since the last confirmed save. Unsynced entries
// already queued for targetID are folded into the new one, so a document has
// at most one entry waiting. A delete of a document the server never saw
// cancels its queued create and leaves nothing behind.
func (q *outboxQueue) Enqueue(ctx context.Context, kind models.OperationKind, targetID string, patch models.DocumentPatch, base models.Document) error {
	if kind == models.OperationCreate {
		patch = base.Patch()
	}

	entry := models.PendingMutation{
		ID:               q.ids.Generate(),
		TargetDocumentID: targetID,
		Kind:             kind,
		Payload:          patch,
		Base:             base.Clone(),
		EnqueuedAt:       q.clock().UTC(),
	}

	earlier, err := q.unsyncedFor(ctx, targetID)
	if err != nil {
		return err
	}

	superseded := make([]string, 0, len(earlier))
	if len(earlier) > 0 {
		step := coalesceGroup(targetID, append(earlier, entry))
		superseded = step.EntryIDs[:len(step.EntryIDs)-1]
		if step.Noop() {
			return q.repo.MarkSynced(ctx, superseded...)
		}
		entry.Kind = step.Kind
		entry.Payload = models.NewDocumentPatch()
		if step.Kind != models.OperationDelete {
			entry.Payload = entry.Payload.WithTitle(step.Request.Title).WithContent(step.Request.Content)
		}
	} else if kind == models.OperationDelete && !models.IsRemoteID(targetID) {
		return nil
	}

	described, err := q.adapter.Describe(entry.Kind, targetID, entry.Payload.Request(base))
	if err != nil {
		return fmt.Errorf("describe %s of %s: %w", entry.Kind, targetID, err)
	}
	entry.TargetURL = described.TargetURL
	entry.Method = described.Method
	entry.Headers = described.Headers
	entry.Body = described.Body

	if err := q.repo.Supersede(ctx, entry, superseded...); err != nil {
		return fmt.Errorf("enqueue %s of %s: %w", entry.Kind, targetID, err)
	}
	return nil
}

// Pending reports whether any of ids has unsynced entries.
func (q *outboxQueue) Pending(ctx context.Context, ids ...string) (bool, error) {
	entries, err := q.repo.ListUnsynced(ctx)
	if err != nil {
		return false, fmt.Errorf("list unsynced outbox entries: %w", err)
	}
	for _, e := range entries {
		if slices.Contains(ids, e.TargetDocumentID) {
			return true, nil
		}
	}
	return false, nil
}

func (q *outboxQueue) unsyncedFor(ctx context.Context, targetID string) ([]models.PendingMutation, error) {
	entries, err := q.repo.ListUnsynced(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unsynced outbox entries: %w", err)
	}

	out := entries[:0]
	for _, e := range entries {
		if e.TargetDocumentID == targetID {
			out = append(out, e)
		}
	}
	return out, nil
}
