// Package services holds the business logic between the HTTP surface and
// the repositories: whitelist challenge authentication and script
// distribution.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/auth"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/users"
)

// WhitelistService authenticates keys against the whitelist and maintains
// the fingerprint fields on user records.
type WhitelistService struct {
	users     users.Repository
	challenge *auth.Challenge
}

func NewWhitelistService(r users.Repository, c *auth.Challenge) *WhitelistService {
	return &WhitelistService{users: r, challenge: c}
}

// Authenticate resolves the key to a whitelist record and computes the
// device proof hash for the requested fingerprint kind. A record lacking
// the requested kind's fingerprint still yields a proof (computed over the
// empty string); a record lacking a username or both fingerprints is
// rejected as malformed.
func (s *WhitelistService) Authenticate(ctx context.Context, key, callerHash string, kind models.FingerprintKind) (username, proof string, err error) {
	user, err := s.users.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrKeyInvalid
		}
		return "", "", fmt.Errorf("whitelist lookup: %w", err)
	}

	if user.Username == nil || (user.SynFingerprint == nil && user.SwFingerprint == nil) {
		return "", "", common.ErrRecordMalformed
	}

	proof = s.challenge.Proof(key, callerHash, user.Fingerprint(kind))
	return *user.Username, proof, nil
}

// UpdateFingerprint stores a device fingerprint on the record identified by
// key, in the field selected by kind.
func (s *WhitelistService) UpdateFingerprint(ctx context.Context, key string, kind models.FingerprintKind, value string) error {
	err := s.users.SetFingerprint(ctx, key, kind, value)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrKeyInvalid
		}
		return fmt.Errorf("fingerprint update: %w", err)
	}

	return nil
}
