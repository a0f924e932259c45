// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/validators"
)

// mapAdapterError makes sure every error leaving the remote path belongs to
// the app taxonomy. Adapter sentinels already wrap it; deadlines and
// statuses outside the contract are treated as transient.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, app.ErrValidation),
		errors.Is(err, app.ErrAuthExpired),
		errors.Is(err, app.ErrNotFound),
		errors.Is(err, app.ErrTransient),
		errors.Is(err, context.Canceled):
		return err
	}

	return fmt.Errorf("%w: %w", app.ErrTransient, err)
}

// mapStoreError does the same for the local path. The local store has no
// transient failures worth retrying: anything it rejects is surfaced as is.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, app.ErrLocalStoreExhausted), errors.Is(err, app.ErrNotFound):
		return err
	case errors.Is(err, store.ErrDocumentAlreadyExists), errors.Is(err, store.ErrEmptyDocumentID):
		return fmt.Errorf("%w: %w", app.ErrValidation, err)
	}

	return err
}

// mapValidationError tags validator failures as fatal.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrInvalidDocument) || errors.Is(err, validators.ErrInvalidPatch) {
		return fmt.Errorf("%w: %w", app.ErrValidation, err)
	}
	return err
}

// isConnectivityLoss reports whether err means the server could not be reached
// at all, as opposed to the server answering with an error.
func isConnectivityLoss(err error) bool {
	return errors.Is(err, adapter.ErrTransport) || errors.Is(err, app.ErrOffline)
}
