// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for document payloads.
//
// The same validator runs on both sides of the API: the client checks a
// payload before it is persisted or sent (a structurally invalid payload is a
// fatal, never-retried error), and the document server checks request bodies
// before they reach the database.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
