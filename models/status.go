package models

import "time"

// SaveStatus is the observable status surface rendered by the UI layer.
type SaveStatus struct {
	IsAutoSaving     bool
	LastSaved        *time.Time
	SaveError        string
	IsSessionExpired bool
	SyncStatus       SyncStatus
}

// Message returns the highest-priority message to show the user, or "" when
// there is nothing to report. Session expiry outranks save errors.
func (s SaveStatus) Message() string {
	if s.IsSessionExpired {
		return "session expired: sign in again to keep saving to your account"
	}
	return s.SaveError
}

// ResultKind classifies the outcome of one persistence call.
type ResultKind int

const (
	// ResultSaved means the backend confirmed the write.
	ResultSaved ResultKind = iota
	// ResultQueued means the write went to the outbox for later replay.
	ResultQueued
	// ResultSuperseded means the result arrived after a newer edit and was ignored.
	ResultSuperseded
	// ResultFailed means the write failed for good; Err says why.
	ResultFailed
	// ResultSessionExpired means the remote rejected the credential.
	ResultSessionExpired
	// ResultStarted marks the beginning of a persistence call.
	ResultStarted
	// ResultDismissed clears a previously surfaced error.
	ResultDismissed
)

// SaveResult is the typed value every persistence path reduces to.
//
// At is the UpdatedAt of the snapshot the call carried; it is compared with
// the current optimistic state before Record is applied.
type SaveResult struct {
	Kind       ResultKind
	Operation  OperationKind
	DocumentID string
	Record     *Document
	Err        error
	At         time.Time
}

// MigrationReport summarises one identity migration pass. Renamed maps every
// migrated local id to the durable id the server assigned.
type MigrationReport struct {
	Migrated []Document
	Failed   []Document
	Known    []Document
	Renamed  map[string]string
}
