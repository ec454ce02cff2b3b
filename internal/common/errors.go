// Package common defines shared constants and sentinel errors used across
// the ShopLens client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Validation errors.
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password too short")

	// Credential errors.
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrDerivation        = errors.New("credential derivation failed")

	// Session lifecycle errors.
	ErrCorruptSessionState = errors.New("corrupt session state")
	ErrSessionExpired      = errors.New("session expired")
	ErrOperationInFlight   = errors.New("credential operation already in flight")
)
