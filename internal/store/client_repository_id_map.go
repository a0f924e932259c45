package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
)

type idMapRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewIDMapRepository(db *DB, logger *logger.Logger) IDMapRepository {
	return &idMapRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Put records temporaryID → durableID. A second Put for the same temporary id
// keeps the first mapping.
func (r *idMapRepository) Put(ctx context.Context, temporaryID, durableID string) error {
	if temporaryID == "" || durableID == "" {
		return ErrEmptyDocumentID
	}

	query, args, err := buildInsertIDMappingQuery(r.builder(), temporaryID, durableID, r.timeArg(r.now()))
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "idMapRepository.Put").
			Str("temporary_id", temporaryID).
			Str("durable_id", durableID).
			Msg("failed to record id mapping")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	return nil
}

func (r *idMapRepository) Lookup(ctx context.Context, temporaryID string) (string, bool, error) {
	query, args, err := buildSelectIDMappingQuery(r.builder(), temporaryID)
	if err != nil {
		return "", false, err
	}

	var durableID string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&durableID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "idMapRepository.Lookup").Msg("failed to look up id mapping")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return durableID, true, nil
}
