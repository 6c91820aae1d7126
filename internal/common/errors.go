// Package common defines shared constants and sentinel errors used across
// the CastGate client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("gateway unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoCredential = errors.New("no credential")

	// Write-path errors.
	ErrQuotaExceeded = errors.New("plan limit exceeded")

	// Local store errors.
	ErrStoreNotReady = errors.New("local store not initialized")
)
