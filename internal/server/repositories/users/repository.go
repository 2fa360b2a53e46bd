// Package users provides persistence for the whitelist: keyed user records
// with optional device fingerprints.
package users

import (
	"context"

	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

type Repository interface {
	// GetByKey returns the whitelist record for a key, or common.ErrorNotFound.
	GetByKey(ctx context.Context, key string) (*models.User, error)

	// SetFingerprint stores a fingerprint value on the record identified by
	// key, in the field selected by kind. Returns common.ErrorNotFound when
	// no record matches.
	SetFingerprint(ctx context.Context, key string, kind models.FingerprintKind, value string) error
}
