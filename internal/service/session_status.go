package service

import (
	"time"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// saveState is what statusReducer folds results into. inFlight counts
// persistence calls that started and have not reported back yet.
type saveState struct {
	status   models.SaveStatus
	inFlight int
}

// statusReducer is the only place a SaveResult changes the observable
// status. It never fails and never looks at anything but its arguments.
func statusReducer(s saveState, r models.SaveResult, now time.Time) saveState {
	switch r.Kind {
	case models.ResultStarted:
		s.inFlight++
		s.status.IsAutoSaving = true
		return s
	case models.ResultDismissed:
		s.status.SaveError = ""
		return keepExpiry(s)
	}

	if s.inFlight > 0 {
		s.inFlight--
	}
	s.status.IsAutoSaving = s.inFlight > 0

	switch r.Kind {
	case models.ResultSaved:
		saved := now
		s.status.LastSaved = &saved
		s.status.SaveError = ""
	case models.ResultQueued:
		s.status.SaveError = ""
	case models.ResultFailed:
		s.status.SaveError = failureMessage(r)
	case models.ResultSessionExpired:
		s.status.IsSessionExpired = true
		s.status.SaveError = failureMessage(r)
	}

	return keepExpiry(s)
}

// keepExpiry pins the error to the auth message until sign-in lifts expiry.
func keepExpiry(s saveState) saveState {
	if s.status.IsSessionExpired {
		s.status.SaveError = app.Message(app.ErrAuthExpired)
	}
	return s
}

func failureMessage(r models.SaveResult) string {
	err := r.Err
	if err == nil {
		err = app.ErrTransient
	}
	if r.Operation == models.OperationDelete {
		return app.MsgDeleteFailed + ": " + err.Error()
	}
	return app.Message(err)
}
