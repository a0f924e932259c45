// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the document server.
//
// The primary abstraction is [DocumentAdapter], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError and wrap the app error taxonomy, so callers
// can branch with [errors.Is] without looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_adapter_mock.go -package=mock

// DocumentAdapter talks to the document REST contract:
//
//	POST   /documents        {title, content} → document
//	PUT    /documents/{id}   {title, content} → document
//	DELETE /documents/{id}
//	GET    /documents        → {documents: [...]}
//	GET    /api/version/     → plain-text version, used as a reachability probe
type DocumentAdapter interface {
	// SetToken stores the bearer token attached to every document request.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	Create(ctx context.Context, req models.DocumentRequest) (models.Document, error)
	Update(ctx context.Context, id string, req models.DocumentRequest) (models.Document, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Document, error)

	// Version fetches the server version without authentication.
	Version(ctx context.Context) (string, error)

	// Describe records the request a write would send, for the outbox. The
	// bearer token is left out; replays use whatever token is current.
	Describe(kind models.OperationKind, id string, req models.DocumentRequest) (models.PendingMutation, error)
}
