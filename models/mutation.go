// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationKind is the kind of write a [PendingMutation] replays.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid reports whether k is one of the known operation kinds.
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// PendingMutation is an outbox entry: a write that could not be confirmed
// against the remote store yet.
//
// TargetURL, Method, Headers and Body record the request as it would have been
// sent at enqueue time. Payload is the typed form the replay worker coalesces.
type PendingMutation struct {
	ID               string            `json:"id"`
	TargetDocumentID string            `json:"targetDocumentId"`
	Kind             OperationKind     `json:"operationKind"`
	Payload          DocumentPatch     `json:"payload"`
	Base             Document          `json:"base"`
	TargetURL        string            `json:"targetUrl"`
	Method           string            `json:"method"`
	Headers          map[string]string `json:"headers,omitempty"`
	Body             []byte            `json:"body,omitempty"`
	EnqueuedAt       time.Time         `json:"enqueuedAt"`
	Synced           bool              `json:"synced"`
}
