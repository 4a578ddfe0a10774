// Package common defines shared constants and sentinel errors used across
// Shelfkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors. A validation failure is fatal to the specific
	// operation and must stop it before any remote call is attempted.
	ErrValidation = errors.New("validation error")

	// Remote store errors. Fetch failures mean "remote unavailable" and are
	// recovered locally; write failures after a successful local write are
	// surfaced as warnings and never rolled back.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	ErrRemoteWrite       = errors.New("remote write failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
