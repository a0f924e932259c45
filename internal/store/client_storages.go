package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
)

// ClientStorages groups all client-side repositories. They share one SQLite
// connection.
type ClientStorages struct {
	// DocumentRepository holds the anonymous identity's documents.
	DocumentRepository LocalDocumentRepository
	// OutboxRepository holds writes awaiting replay against the server.
	OutboxRepository OutboxRepository
	// IDMapRepository records temporary to durable id transitions.
	IDMapRepository IDMapRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the document, outbox and id-map repositories on that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DocumentRepository: NewLocalDocumentRepository(db, cfg.DB.MaxDocuments, logger),
		OutboxRepository:   NewOutboxRepository(db, logger),
		IDMapRepository:    NewIDMapRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
