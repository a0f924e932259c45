package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

type localDocumentRepository struct {
	*DB
	logger       *logger.Logger
	maxDocuments int
}

// NewLocalDocumentRepository returns the local document collection. A
// positive maxDocuments caps the number of stored documents; creates beyond
// it fail with [app.ErrLocalStoreExhausted].
func NewLocalDocumentRepository(db *DB, maxDocuments int, logger *logger.Logger) LocalDocumentRepository {
	return &localDocumentRepository{
		DB:           db,
		logger:       logger,
		maxDocuments: maxDocuments,
	}
}

func (l *localDocumentRepository) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if doc.ID == "" {
		return models.Document{}, ErrEmptyDocumentID
	}

	row, err := l.documentRow(doc)
	if err != nil {
		return models.Document{}, err
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Create").Msg("failed to begin transaction")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, mapSQLiteError(err))
	}
	defer tx.Rollback()

	if l.maxDocuments > 0 {
		countQuery, countArgs, err := buildCountDocumentsQuery(l.builder())
		if err != nil {
			return models.Document{}, err
		}

		var count int
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
			log.Err(err).Str("func", "localDocumentRepository.Create").Msg("failed to count documents")
			return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count >= l.maxDocuments {
			log.Warn().
				Str("func", "localDocumentRepository.Create").
				Int("count", count).
				Int("max_documents", l.maxDocuments).
				Msg("local document limit reached")
			return models.Document{}, fmt.Errorf("%w: limit of %d documents reached", app.ErrLocalStoreExhausted, l.maxDocuments)
		}
	}

	query, args, err := buildInsertDocumentQuery(l.builder(), row, false)
	if err != nil {
		return models.Document{}, err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localDocumentRepository.Create").
			Str("document_id", doc.ID).
			Msg("failed to insert document")
		if isSQLiteConstraint(err) {
			return models.Document{}, fmt.Errorf("%w: %s", ErrDocumentAlreadyExists, doc.ID)
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Create").Msg("failed to commit transaction")
		return models.Document{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, mapSQLiteError(err))
	}

	saved := doc.Clone()
	saved.Durable = true
	if saved.Content == nil {
		saved.Content = []string{}
	}
	return saved, nil
}

func (l *localDocumentRepository) Update(ctx context.Context, id string, patch models.DocumentPatch, at time.Time) (models.Document, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Document{}, ErrEmptyDocumentID
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Update").Msg("failed to begin transaction")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, mapSQLiteError(err))
	}
	defer tx.Rollback()

	selectQuery, selectArgs, err := buildSelectDocumentQuery(l.builder(), id, "")
	if err != nil {
		return models.Document{}, err
	}

	current, err := scanDocument(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, fmt.Errorf("%w: %s", app.ErrNotFound, id)
		}
		log.Err(err).Str("func", "localDocumentRepository.Update").Str("document_id", id).Msg("failed to read document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	updated := patch.Apply(current)
	updated.UpdatedAt = at.UTC()

	row, err := l.documentRow(updated)
	if err != nil {
		return models.Document{}, err
	}
	query, args, err := buildUpdateDocumentQuery(l.builder(), row, false)
	if err != nil {
		return models.Document{}, err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Update").Str("document_id", id).Msg("failed to update document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Update").Msg("failed to commit transaction")
		return models.Document{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, mapSQLiteError(err))
	}

	return updated, nil
}

func (l *localDocumentRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(l.builder(), id, "")
	if err != nil {
		return err
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Delete").Str("document_id", id).Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
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

func (l *localDocumentRepository) Get(ctx context.Context, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(l.builder(), id, "")
	if err != nil {
		return models.Document{}, err
	}

	doc, err := scanDocument(l.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, fmt.Errorf("%w: %s", app.ErrNotFound, id)
		}
		log.Err(err).Str("func", "localDocumentRepository.Get").Str("document_id", id).Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

func (l *localDocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsQuery(l.builder(), "")
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localDocumentRepository.List").Msg("failed to query documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			log.Err(err).Str("func", "localDocumentRepository.List").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "localDocumentRepository.List").Msg("error iterating document rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

func (l *localDocumentRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearDocumentsQuery(l.builder())
	if err != nil {
		return err
	}

	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localDocumentRepository.Clear").Msg("failed to clear documents")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, mapSQLiteError(err))
	}

	return nil
}

func isSQLiteConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
