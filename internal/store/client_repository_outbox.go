// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type outboxRepository struct {
	*DB
	logger *logger.Logger
}

// NewOutboxRepository returns the SQLite-backed outbox.
func NewOutboxRepository(db *DB, logger *logger.Logger) OutboxRepository {
	return &outboxRepository{
		DB:     db,
		logger: logger,
	}
}

func (o *outboxRepository) Enqueue(ctx context.Context, mutation models.PendingMutation) error {
	return o.Supersede(ctx, mutation)
}

// Supersede appends mutation and flags the entries it replaces as synced, in
// one transaction, so a document never has both or neither queued.
func (o *outboxRepository) Supersede(ctx context.Context, mutation models.PendingMutation, supersededIDs ...string) error {
	log := logger.FromContext(ctx)

	if mutation.ID == "" || mutation.TargetDocumentID == "" || !mutation.Kind.Valid() {
		return fmt.Errorf("%w: id=%q target=%q kind=%q", ErrInvalidMutation, mutation.ID, mutation.TargetDocumentID, mutation.Kind)
	}

	row, err := o.outboxRow(mutation)
	if err != nil {
		return err
	}

	insertQuery, insertArgs, err := buildInsertOutboxQuery(o.builder(), row)
	if err != nil {
		return err
	}

	tx, err := o.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if len(supersededIDs) > 0 {
		query, args, err := buildMarkSyncedQuery(o.builder(), supersededIDs)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "outboxRepository.Supersede").Strs("ids", supersededIDs).Msg("failed to flag superseded entries")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
		}
	}

	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).
			Str("func", "outboxRepository.Supersede").
			Str("mutation_id", mutation.ID).
			Str("target_document_id", mutation.TargetDocumentID).
			Msg("failed to append outbox entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "outboxRepository.Supersede").
		Str("mutation_id", mutation.ID).
		Str("kind", string(mutation.Kind)).
		Int("superseded", len(supersededIDs)).
		Msg("outbox entry appended")

	return nil
}

func (o *outboxRepository) ListUnsynced(ctx context.Context) ([]models.PendingMutation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUnsyncedOutboxQuery(o.builder())
	if err != nil {
		return nil, err
	}

	rows, err := o.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.ListUnsynced").Msg("failed to query outbox")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	mutations := make([]models.PendingMutation, 0)
	for rows.Next() {
		m, err := scanMutation(rows)
		if err != nil {
			log.Err(err).Str("func", "outboxRepository.ListUnsynced").Msg("failed to scan outbox row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		mutations = append(mutations, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return mutations, nil
}

func (o *outboxRepository) MarkSynced(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSyncedQuery(o.builder(), ids)
	if err != nil {
		return err
	}

	if _, err := o.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "outboxRepository.MarkSynced").Strs("ids", ids).Msg("failed to mark outbox entries synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	return nil
}

func (o *outboxRepository) Retarget(ctx context.Context, fromID, toID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRetargetOutboxQuery(o.builder(), fromID, toID)
	if err != nil {
		return 0, err
	}

	res, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "outboxRepository.Retarget").
			Str("from", fromID).
			Str("to", toID).
			Msg("failed to retarget outbox entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	return res.RowsAffected()
}

func (o *outboxRepository) CountUnsynced(ctx context.Context) (int, error) {
	query, args, err := buildCountUnsyncedQuery(o.builder())
	if err != nil {
		return 0, err
	}

	var count int
	if err := o.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "outboxRepository.CountUnsynced").Msg("failed to count outbox entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (o *outboxRepository) PurgeSynced(ctx context.Context) (int64, error) {
	query, args, err := buildPurgeSyncedQuery(o.builder())
	if err != nil {
		return 0, err
	}

	res, err := o.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "outboxRepository.PurgeSynced").Msg("failed to purge synced entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
