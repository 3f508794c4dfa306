// Package common defines shared constants and sentinel errors used across
// the musicbox server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Session token lifecycle errors.
	ErrMissingToken = errors.New("session token missing")
	ErrUnknownToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")

	// Catalog query errors.
	ErrNoFilter = errors.New("no filter provided")

	// Subscription errors.
	ErrMissingUUID = errors.New("uuid is required")
)
