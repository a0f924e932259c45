// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants and the error
// taxonomy used across the pattern-keeper client and the document server.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown in the client status bar. Keeping them in one
// place ensures consistent wording between the two sides of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails schema validation (e.g. a non-string token).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountIDProvided is returned when a handler requires an account ID
	// (extracted from the JWT subject) but none is present in the context.
	MsgNoAccountIDProvided = "no account ID provided"

	// MsgDocumentNotFound is returned when an update or delete targets a
	// document that does not exist for the current account.
	MsgDocumentNotFound = "document not found"

	// MsgTooManyRequests is returned by rate-limited endpoints.
	MsgTooManyRequests = "too many requests"

	// MsgLocalStoreFull is shown when the local document store refuses a write.
	MsgLocalStoreFull = "local storage is full, the edit is kept in memory only"

	// MsgSaveFailed prefixes autosave failures shown in the status bar.
	MsgSaveFailed = "autosave failed"

	// MsgDeleteFailed prefixes rolled-back deletions shown in the status bar.
	MsgDeleteFailed = "delete failed, document restored"
)
