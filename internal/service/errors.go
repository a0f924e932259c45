package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoAccountID             = errors.New("no account ID provided")

	ErrNoCurrentDocument   = errors.New("no document is open")
	ErrUnknownDocument     = errors.New("document is not in the known list")
	ErrMigrationInProgress = errors.New("identity migration already running")
	ErrNotSignedIn         = errors.New("not signed in")
)
