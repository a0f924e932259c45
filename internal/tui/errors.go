// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
)

// humanizeError turns sign-in and sync errors into status bar text.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, app.ErrOffline), errors.Is(err, adapter.ErrTransport):
		return "server is unreachable, changes are kept and will sync later"
	case errors.Is(err, service.ErrNotSignedIn):
		return "sign in to sync documents with your account"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "token is empty"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, app.ErrAuthExpired):
		return app.MsgTokenIsExpired
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return app.MsgTokenIsExpiredOrInvalid
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server is unreachable, changes are kept and will sync later"
	}

	return err.Error()
}
