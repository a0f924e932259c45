package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Repositories additionally wrap not-found and exhausted-store conditions into
// the app taxonomy so the service layer never has to import this package's
// errors to classify a save.
var (
	// ErrDocumentNotSaved is returned when an INSERT or UPDATE completes
	// without error but affects no rows.
	ErrDocumentNotSaved = errors.New("document was not saved")

	// ErrDocumentAlreadyExists is returned when a create reuses an existing id.
	ErrDocumentAlreadyExists = errors.New("document already exists")

	// ErrEmptyDocumentID is returned when a repository call is made without an id.
	ErrEmptyDocumentID = errors.New("empty document id")

	// ErrInvalidMutation is returned when an outbox entry has no id, target or
	// a kind outside create/update/delete.
	ErrInvalidMutation = errors.New("invalid pending mutation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")
)
