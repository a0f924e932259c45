package tui

import "github.com/MKhiriev/go-pattern-keeper/models"

// statusMsg carries the latest save status from the session subscription.
type statusMsg struct {
	status models.SaveStatus
}

type signedInMsg struct {
	report models.MigrationReport
	err    error
}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct{}
