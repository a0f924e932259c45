package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/backoff"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// persist makes one save cycle for p and reduces its outcome to a result.
// It never returns an error: every failure ends up in SaveResult.Err.
func (s *Scheduler) persist(ctx context.Context, p *pendingSave) models.SaveResult {
	result := models.SaveResult{Operation: p.op, DocumentID: p.doc.ID, At: p.doc.UpdatedAt}
	s.sink.Confirm(models.SaveResult{Kind: models.ResultStarted, Operation: p.op, DocumentID: p.doc.ID, At: p.doc.UpdatedAt})

	if p.op != models.OperationDelete {
		if err := s.validator.Validate(ctx, p.doc); err != nil {
			return failed(result, mapValidationError(err))
		}
	}

	target := s.registry.Resolve(ctx, p.doc.ID)
	if p.backend.Kind() == BackendLocal {
		return s.persistLocal(ctx, p, target, result)
	}
	return s.persistRemote(ctx, p, target, result)
}

func (s *Scheduler) persistLocal(ctx context.Context, p *pendingSave, target string, result models.SaveResult) models.SaveResult {
	var (
		rec models.Document
		err error
	)

	switch {
	case p.op == models.OperationDelete:
		if !models.IsLocalID(target) {
			result.Kind = models.ResultSaved
			return result
		}
		err = p.backend.Delete(ctx, target)
	case models.IsLocalID(target):
		rec, err = p.backend.Update(ctx, target, p.patch, p.doc)
	default:
		rec, err = p.backend.Create(ctx, p.doc)
		if err == nil {
			s.recordTransition(ctx, p.doc.ID, rec.ID)
		}
	}

	if err != nil {
		s.logger.Err(err).
			Str("func", "Scheduler.persistLocal").
			Str("document_id", p.doc.ID).
			Str("operation", string(p.op)).
			Msg("local save failed")
		return failed(result, err)
	}

	result.Kind = models.ResultSaved
	if p.op != models.OperationDelete {
		result.Record = &rec
	}
	return result
}

func (s *Scheduler) persistRemote(ctx context.Context, p *pendingSave, target string, result models.SaveResult) models.SaveResult {
	log := s.logger.With().
		Str("func", "Scheduler.persistRemote").
		Str("document_id", p.doc.ID).
		Str("target_id", target).
		Logger()

	if s.sessionExpired() {
		result.Kind = models.ResultSessionExpired
		result.Err = app.ErrAuthExpired
		return result
	}

	kind := p.op
	if kind != models.OperationDelete && !models.IsRemoteID(target) {
		kind = models.OperationCreate
	}

	if kind == models.OperationDelete && !models.IsRemoteID(target) {
		// never reached the server; cancels a queued create, if any
		return s.enqueue(ctx, models.OperationDelete, target, p, result, nil)
	}

	if !s.connectivity.Online() {
		return s.enqueue(ctx, kind, target, p, result, nil)
	}

	// queued entries for the document are replayed first; this write joins them
	queued, err := s.queue.Pending(ctx, target, p.doc.ID)
	if err != nil {
		log.Err(err).Msg("failed to read outbox, sending directly")
	}
	if queued {
		result = s.enqueue(ctx, kind, target, p, result, nil)
		s.drainRequester()()
		return result
	}

	var rec models.Document
	state, err := s.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		switch kind {
		case models.OperationCreate:
			rec, err = p.backend.Create(ctx, p.doc)
		case models.OperationUpdate:
			rec, err = p.backend.Update(ctx, target, p.patch, p.doc)
		case models.OperationDelete:
			err = p.backend.Delete(ctx, target)
		}
		return err
	}, func(st models.RetryState) {
		log.Debug().Int("attempt", st.Attempt).Time("next_retry_at", st.NextRetryAt).AnErr("last_error", st.LastError).Msg("remote save attempt failed")
	})

	switch {
	case err == nil:
		if kind == models.OperationCreate {
			s.recordTransition(ctx, p.doc.ID, rec.ID)
			if target != p.doc.ID {
				s.recordTransition(ctx, target, rec.ID)
			}
		}
		result.Kind = models.ResultSaved
		if kind != models.OperationDelete {
			result.Record = &rec
		}
		return result

	case errors.Is(err, context.Canceled):
		log.Warn().Msg("save cancelled by teardown, queueing it")
		return s.enqueue(context.WithoutCancel(ctx), kind, target, p, result, nil)

	case errors.Is(err, app.ErrAuthExpired):
		log.Warn().Err(err).Msg("session expired, remote saves paused until sign-in")
		s.markExpired()
		result.Kind = models.ResultSessionExpired
		result.Err = err
		return result

	case errors.Is(err, backoff.ErrRetriesExhausted):
		log.Err(err).Int("attempts", state.Attempt).Msg("retries exhausted, queueing save")
		s.connectivity.Report(err)
		return s.enqueue(ctx, kind, target, p, result, err)
	}

	log.Err(err).Msg("remote save failed")
	return failed(result, err)
}

// enqueue appends the write to the outbox. cause is the error the save
// failed with, if any; the result is Failed then, Queued otherwise.
func (s *Scheduler) enqueue(ctx context.Context, kind models.OperationKind, target string, p *pendingSave, result models.SaveResult, cause error) models.SaveResult {
	if err := s.queue.Enqueue(ctx, kind, target, p.patch, p.doc); err != nil {
		s.logger.Err(err).Str("func", "Scheduler.enqueue").Str("document_id", p.doc.ID).Msg("failed to queue write")
		if cause != nil {
			err = errors.Join(cause, err)
		}
		return failed(result, fmt.Errorf("queue write: %w", err))
	}

	if cause != nil {
		return failed(result, cause)
	}
	result.Kind = models.ResultQueued
	return result
}

func (s *Scheduler) drainRequester() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestDrain
}

func (s *Scheduler) recordTransition(ctx context.Context, from, to string) {
	if _, err := s.registry.Record(ctx, from, to); err != nil {
		s.logger.Err(err).Str("func", "Scheduler.recordTransition").Str("from", from).Str("to", to).Msg("failed to record id transition")
	}
}

func failed(result models.SaveResult, err error) models.SaveResult {
	result.Kind = models.ResultFailed
	result.Err = err
	return result
}
