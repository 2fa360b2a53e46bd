// Package common defines shared sentinel errors used across the service
// layers of the Acidity backend. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Whitelist errors.
	ErrKeyInvalid        = errors.New("key is invalid")
	ErrRecordMalformed   = errors.New("user object is invalid")
	ErrUnsupportedKind   = errors.New("fingerprint type not allowed")
	ErrFingerprintMismatch = errors.New("fingerprint and type mismatch")

	// Script distribution errors.
	ErrAdminRequired  = errors.New("missing access")
	ErrScriptNotFound = errors.New("script not found")
)
