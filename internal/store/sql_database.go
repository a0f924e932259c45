package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/migrations"
)

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// dialect selects the schema and placeholder format of a connection.
type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            dialect
}

// Migrate applies the schema matching the connection's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectPostgres {
		return migrations.MigrateServer(db.DB)
	}
	return migrations.MigrateClient(db.DB)
}

// builder returns a squirrel statement builder with the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return builderFor(db.dialect)
}

// retryable reports whether err is a transient driver failure.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func builderFor(d dialect) sq.StatementBuilderType {
	if d == dialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
