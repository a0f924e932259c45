package app

import "errors"

// Error taxonomy shared by every persistence path. Transport and store errors
// are wrapped into one of these at the package boundary so that callers can
// branch with [errors.Is] without knowing which backend produced them.
var (
	// ErrValidation is fatal and never retried: the payload is structurally invalid.
	ErrValidation = errors.New("validation error")

	// ErrAuthExpired is fatal: the remote rejected the credential. Unsent edits
	// stay in memory until the user signs in again.
	ErrAuthExpired = errors.New("session expired")

	// ErrTransient covers 5xx, 429 and transport failures. It is retried and,
	// once retries are exhausted, the mutation is queued in the outbox.
	ErrTransient = errors.New("transient error")

	// ErrLocalStoreExhausted is fatal: the local store is full and the edit
	// survives in memory only.
	ErrLocalStoreExhausted = errors.New("local store exhausted")

	// ErrNotFound is fatal: the backend does not know the document. Deletes
	// treat it as success.
	ErrNotFound = errors.New("document not found")

	// ErrOffline is returned when a remote write is not attempted because the
	// client has no connectivity.
	ErrOffline = errors.New("client is offline")
)

// IsFatal reports whether err must not be retried.
func IsFatal(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrAuthExpired) ||
		errors.Is(err, ErrLocalStoreExhausted) ||
		errors.Is(err, ErrNotFound)
}

// Message returns the user-facing text for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthExpired):
		return MsgTokenIsExpired
	case errors.Is(err, ErrLocalStoreExhausted):
		return MsgLocalStoreFull
	case errors.Is(err, ErrValidation):
		return MsgSaveFailed + ": " + MsgInvalidDataProvided
	}
	return MsgSaveFailed + ": " + err.Error()
}
