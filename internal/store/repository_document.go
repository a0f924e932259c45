package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository] used by the document server.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts doc and returns the stored row.
//
// Error handling:
//   - unique_violation (23505) → [ErrDocumentAlreadyExists].
//   - retryable driver errors → [app.ErrTransient].
func (r *documentRepository) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.documentRow(doc)
	if err != nil {
		return models.Document{}, err
	}

	query, args, err := buildInsertDocumentQuery(r.db.builder(), row, true)
	if err != nil {
		return models.Document{}, err
	}

	saved, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Str("document_id", doc.ID).Msg("error inserting document")
		return models.Document{}, r.mapError(err)
	}

	return saved, nil
}

// Update replaces title and content of an owner's document.
func (r *documentRepository) Update(ctx context.Context, ownerID, id string, req models.DocumentRequest, at time.Time) (models.Document, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.documentRow(models.Document{
		ID:        id,
		Owner:     ownerID,
		Title:     req.Title,
		Content:   req.Content,
		UpdatedAt: at,
	})
	if err != nil {
		return models.Document{}, err
	}

	query, args, err := buildUpdateDocumentQuery(r.db.builder(), row, true)
	if err != nil {
		return models.Document{}, err
	}

	saved, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Update").Str("document_id", id).Msg("error updating document")
		return models.Document{}, r.mapError(err)
	}

	return saved, nil
}

// Delete removes an owner's document; a missing row is [app.ErrNotFound].
func (r *documentRepository) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(r.db.builder(), id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Delete").Str("document_id", id).Msg("error deleting document")
		return r.mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", app.ErrNotFound, id)
	}

	return nil
}

// List returns every document of ownerID ordered by id.
func (r *documentRepository) List(ctx context.Context, ownerID string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsQuery(r.db.builder(), ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error querying documents")
		return nil, r.mapError(err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			log.Err(err).Str("func", "*documentRepository.List").Msg("error scanning document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

func (r *documentRepository) mapError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", app.ErrNotFound, err)
	case postgresError(err) == pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDocumentAlreadyExists, err)
	case postgresError(err) == pgerrcode.InvalidTextRepresentation:
		// malformed uuid in the path
		return fmt.Errorf("%w: %w", app.ErrNotFound, err)
	case r.db.retryable(err):
		return fmt.Errorf("%w: %w", app.ErrTransient, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}
