package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
)

// Transport sentinels. Each one wraps the app error it belongs to, so callers
// may match either the precise status with errors.Is(err, ErrTooManyRequests)
// or the retry class with errors.Is(err, app.ErrTransient).
var (
	ErrBadRequest      = fmt.Errorf("bad request: %w", app.ErrValidation)
	ErrUnauthorized    = fmt.Errorf("client unauthorized: %w", app.ErrAuthExpired)
	ErrNotFound        = fmt.Errorf("not found: %w", app.ErrNotFound)
	ErrTooManyRequests = fmt.Errorf("too many requests: %w", app.ErrTransient)
	ErrServerError     = fmt.Errorf("server error: %w", app.ErrTransient)
	ErrTransport       = fmt.Errorf("transport failure: %w", app.ErrTransient)

	// ErrNoToken is returned when an authenticated call is made before SetToken.
	ErrNoToken = fmt.Errorf("no bearer token set: %w", app.ErrAuthExpired)

	// ErrUnexpectedStatus covers statuses outside the document contract.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
