package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type clientSyncService struct {
	outbox       store.OutboxRepository
	registry     *IDRegistry
	remote       Backend
	creds        CredentialSource
	connectivity *Connectivity
	sink         ResultSink
	guard        DocumentGuard

	mu sync.Mutex

	logger *logger.Logger
}

// NewClientSyncService builds the outbox replay worker. Drains never run
// concurrently and replay one document at a time, each under the guard the
// scheduler saves that document under.
func NewClientSyncService(
	outbox store.OutboxRepository,
	registry *IDRegistry,
	remote Backend,
	creds CredentialSource,
	connectivity *Connectivity,
	sink ResultSink,
	guard DocumentGuard,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		outbox:       outbox,
		registry:     registry,
		remote:       remote,
		creds:        creds,
		connectivity: connectivity,
		sink:         sink,
		guard:        guard,
		logger:       logger,
	}
}

// Drain implements [ClientSyncService]. A failed document stays unsynced for
// the next cycle and does not stop the others, except when the server stops
// answering or rejects the credential: then the drain ends early.
func (s *clientSyncService) Drain(ctx context.Context) (models.SyncReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report models.SyncReport

	if !s.connectivity.Online() {
		return report, app.ErrOffline
	}

	entries, err := s.outbox.ListUnsynced(ctx)
	if err != nil {
		return report, fmt.Errorf("list unsynced outbox entries: %w", err)
	}
	if len(entries) == 0 {
		s.connectivity.Drained(0)
		return report, nil
	}

	if strings.TrimSpace(s.creds.Token()) == "" {
		// nothing can be replayed without a credential; entries wait for sign-in
		report.Pending = len(entries)
		s.connectivity.Drained(0)
		return report, ErrNotSignedIn
	}

	s.connectivity.BeginSync()

	steps := Coalesce(entries, func(id string) string { return s.registry.Resolve(ctx, id) })
	s.logger.Info().
		Str("func", "clientSyncService.Drain").
		Int("entries", len(entries)).
		Int("steps", len(steps)).
		Msg("draining outbox")

	var drainErr error
	for _, planned := range steps {
		if err := ctx.Err(); err != nil {
			drainErr = err
			break
		}

		step, err := s.replayGuarded(ctx, planned)
		switch {
		case err == nil && step.Noop():
			report.Skipped++
			continue
		case err == nil:
			report.Replayed++
			continue
		}

		report.Failed++
		s.logger.Err(err).
			Str("func", "clientSyncService.Drain").
			Str("target_id", step.TargetID).
			Str("kind", string(step.Kind)).
			Msg("replay failed")

		if isConnectivityLoss(err) || errors.Is(err, app.ErrAuthExpired) {
			drainErr = err
			break
		}
	}

	pending, err := s.outbox.CountUnsynced(ctx)
	if err != nil {
		return report, errors.Join(drainErr, fmt.Errorf("count unsynced outbox entries: %w", err))
	}
	report.Pending = pending

	if pending == 0 {
		if _, err := s.outbox.PurgeSynced(ctx); err != nil {
			s.logger.Err(err).Str("func", "clientSyncService.Drain").Msg("failed to purge synced entries")
		}
	}

	s.connectivity.Report(drainErr)
	s.connectivity.Drained(pending)

	return report, drainErr
}

// replayGuarded holds the document's slot while the step is planned again
// from the current outbox and sent. Entries may have been folded together
// since the drain listed them.
func (s *clientSyncService) replayGuarded(ctx context.Context, planned ReplayStep) (ReplayStep, error) {
	release := s.guard.Acquire(planned.TargetID, planned.Base.ID)
	var aliases []string
	defer func() { release(aliases...) }()

	step, err := s.replan(ctx, planned)
	if err != nil {
		return planned, err
	}

	rec, err := s.replay(ctx, step)
	if rec.ID != "" {
		aliases = append(aliases, rec.ID)
	}
	return step, err
}

// replan returns the step the outbox holds now for planned's document, or
// an empty step when nothing is left for it.
func (s *clientSyncService) replan(ctx context.Context, planned ReplayStep) (ReplayStep, error) {
	entries, err := s.outbox.ListUnsynced(ctx)
	if err != nil {
		return planned, fmt.Errorf("list unsynced outbox entries: %w", err)
	}

	resolve := func(id string) string { return s.registry.Resolve(ctx, id) }
	target := resolve(planned.TargetID)
	for _, step := range Coalesce(entries, resolve) {
		if step.TargetID == target {
			return step, nil
		}
	}
	return ReplayStep{TargetID: target, Base: planned.Base}, nil
}

// replay sends one step. Entries are marked synced on success and on
// permanent failures that no later replay could fix.
func (s *clientSyncService) replay(ctx context.Context, step ReplayStep) (models.Document, error) {
	if step.Noop() {
		return models.Document{}, s.outbox.MarkSynced(ctx, step.EntryIDs...)
	}

	doc := step.Document()
	result := models.SaveResult{Operation: step.Kind, DocumentID: step.Base.ID, At: step.Base.UpdatedAt}
	s.sink.Confirm(models.SaveResult{Kind: models.ResultStarted, Operation: step.Kind, DocumentID: step.Base.ID})

	var (
		rec models.Document
		err error
	)
	switch step.Kind {
	case models.OperationCreate:
		rec, err = s.remote.Create(ctx, doc)
	case models.OperationUpdate:
		patch := models.NewDocumentPatch().WithTitle(step.Request.Title).WithContent(step.Request.Content)
		rec, err = s.remote.Update(ctx, step.TargetID, patch, doc)
	case models.OperationDelete:
		err = s.remote.Delete(ctx, step.TargetID)
	}

	if err != nil {
		result.Err = err
		result.Kind = models.ResultFailed
		if errors.Is(err, app.ErrAuthExpired) {
			result.Kind = models.ResultSessionExpired
		}
		s.sink.Confirm(result)

		if permanent := app.IsFatal(err) && !errors.Is(err, app.ErrAuthExpired); permanent {
			if markErr := s.outbox.MarkSynced(ctx, step.EntryIDs...); markErr != nil {
				return models.Document{}, errors.Join(err, markErr)
			}
		}
		return models.Document{}, err
	}

	if step.Kind == models.OperationCreate {
		for _, from := range []string{step.TargetID, step.Base.ID} {
			if models.IsRemoteID(from) {
				continue
			}
			if _, err := s.registry.Record(ctx, from, rec.ID); err != nil {
				s.logger.Err(err).Str("func", "clientSyncService.replay").Str("from", from).Msg("failed to record id transition")
			}
		}
	}

	if err := s.outbox.MarkSynced(ctx, step.EntryIDs...); err != nil {
		return rec, fmt.Errorf("mark replayed entries synced: %w", err)
	}

	result.Kind = models.ResultSaved
	if step.Kind != models.OperationDelete {
		result.Record = &rec
	}
	s.sink.Confirm(result)
	return rec, nil
}
