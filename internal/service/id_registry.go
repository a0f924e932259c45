package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// maxResolveHops bounds id chains: temporary → local → remote is the longest
// one that can occur.
const maxResolveHops = 4

// IDRegistry remembers which id a document moved to after a create. It is
// the reason a create replayed twice turns into an update the second time.
type IDRegistry struct {
	repo   store.IDMapRepository
	outbox store.OutboxRepository

	mu    sync.RWMutex
	cache map[string]string

	logger *logger.Logger
}

func NewIDRegistry(repo store.IDMapRepository, outbox store.OutboxRepository, logger *logger.Logger) *IDRegistry {
	return &IDRegistry{
		repo:   repo,
		outbox: outbox,
		cache:  make(map[string]string),
		logger: logger,
	}
}

// Resolve follows recorded transitions from id and returns the last id in
// the chain, or id itself when nothing was recorded.
func (r *IDRegistry) Resolve(ctx context.Context, id string) string {
	current := id
	for range maxResolveHops {
		next, ok := r.lookup(ctx, current)
		if !ok || next == current {
			break
		}
		current = next
	}
	return current
}

func (r *IDRegistry) lookup(ctx context.Context, id string) (string, bool) {
	r.mu.RLock()
	next, ok := r.cache[id]
	r.mu.RUnlock()
	if ok {
		return next, true
	}

	if models.IsRemoteID(id) {
		return "", false
	}

	next, ok, err := r.repo.Lookup(ctx, id)
	if err != nil {
		r.logger.Err(err).Str("func", "IDRegistry.lookup").Str("id", id).Msg("id map lookup failed")
		return "", false
	}
	if ok {
		r.mu.Lock()
		r.cache[id] = next
		r.mu.Unlock()
	}
	return next, ok
}

// Record stores the transition from → to. The first transition recorded for
// an id wins; the effective target is returned. Queued outbox entries for
// from are retargeted when to is a server id.
func (r *IDRegistry) Record(ctx context.Context, from, to string) (string, error) {
	if from == "" || to == "" || from == to {
		return to, nil
	}

	if err := r.repo.Put(ctx, from, to); err != nil {
		return "", fmt.Errorf("record id transition %s -> %s: %w", from, to, err)
	}

	effective, ok, err := r.repo.Lookup(ctx, from)
	if err != nil {
		return "", fmt.Errorf("read back id transition for %s: %w", from, err)
	}
	if !ok {
		effective = to
	}

	r.mu.Lock()
	r.cache[from] = effective
	r.mu.Unlock()

	if effective != to {
		r.logger.Warn().
			Str("func", "IDRegistry.Record").
			Str("from", from).
			Str("to", to).
			Str("effective", effective).
			Msg("id already transitioned, keeping first mapping")
	}

	if models.IsRemoteID(effective) {
		n, err := r.outbox.Retarget(ctx, from, effective)
		if err != nil {
			return effective, fmt.Errorf("retarget outbox entries of %s: %w", from, err)
		}
		if n > 0 {
			r.logger.Debug().Str("func", "IDRegistry.Record").Str("from", from).Int64("entries", n).Msg("outbox entries retargeted")
		}
	}

	return effective, nil
}
