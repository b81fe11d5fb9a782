package models

import (
	"errors"
)

// Sentinel errors shared across repositories, services and handlers.
// Handlers map these onto HTTP statuses; everything else is treated as an
// internal failure.
var (
	// ErrNotConfigured is returned for every write (and auth) operation
	// when the backing database is not configured. The server still starts
	// and serves public pages in an empty, safe state.
	ErrNotConfigured = errors.New("backend not configured")

	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for expired, revoked or malformed
	// session tokens.
	ErrInvalidToken = errors.New("invalid session token")
)
