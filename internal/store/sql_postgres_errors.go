package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification says whether a failed statement is worth repeating.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint, syntax and data errors and
	// for anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks connection loss, rollbacks and server restarts. The
	// document server maps these to 503 so clients back off and try again.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the document
// server's PostgreSQL store.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not carry a
// PostgreSQL code are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.QueryCanceled:
		return Retryable
	}
	return NonRetryable
}
