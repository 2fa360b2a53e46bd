package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/cryptox"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/users"
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/versions"
	"github.com/emeraldsys/acidity-backend/internal/server/scripts"
)

// Target selects a script either by exact version string or, when Version
// is empty, by a channel's latest pointer.
type Target struct {
	Version string
	Channel models.Channel
}

// ScriptService serves and publishes versioned script content. Any valid
// whitelist key may fetch; publishing requires the admin flag.
type ScriptService struct {
	users    users.Repository
	versions versions.Repository
	blobs    scripts.Store
}

func NewScriptService(u users.Repository, v versions.Repository, b scripts.Store) *ScriptService {
	return &ScriptService{users: u, versions: v, blobs: b}
}

// Fetch returns the script bytes for the target. The version record is
// authoritative: a missing record is common.ErrScriptNotFound even when a
// blob happens to exist under that name, while a missing blob behind an
// existing record surfaces as a read error.
func (s *ScriptService) Fetch(ctx context.Context, key string, target Target) ([]byte, error) {
	record, err := s.resolve(ctx, key, target)
	if err != nil {
		return nil, err
	}

	data, err := s.blobs.Read(ctx, record.Version)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Hash returns the lowercase SHA-256 hex digest of the target's script
// bytes.
func (s *ScriptService) Hash(ctx context.Context, key string, target Target) (string, error) {
	data, err := s.Fetch(ctx, key, target)
	if err != nil {
		return "", err
	}

	return cryptox.SHA256Hex(data), nil
}

// Publish stores script bytes under version on behalf of an admin key. A
// previously unseen version becomes the channel's latest; republishing an
// existing version overwrites only the blob and leaves every latest flag
// untouched. A blob-write failure after the registry update is surfaced and
// deliberately not rolled back; republishing the same version is the
// recovery path.
func (s *ScriptService) Publish(ctx context.Context, key, version string, ch models.Channel, data []byte) error {
	user, err := s.users.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrKeyInvalid
		}
		return fmt.Errorf("whitelist lookup: %w", err)
	}
	if !user.Admin {
		return common.ErrAdminRequired
	}

	_, err = s.versions.GetByVersion(ctx, version)
	switch {
	case err == nil:
		// existing version: flags stay where they are
	case errors.Is(err, common.ErrorNotFound):
		if err := s.versions.InsertAsLatest(ctx, version, ch); err != nil {
			return fmt.Errorf("version registry: %w", err)
		}
	default:
		return fmt.Errorf("version registry: %w", err)
	}

	if err := s.blobs.Write(ctx, version, data); err != nil {
		return err
	}

	return nil
}

func (s *ScriptService) resolve(ctx context.Context, key string, target Target) (*models.Version, error) {
	if _, err := s.users.GetByKey(ctx, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrKeyInvalid
		}
		return nil, fmt.Errorf("whitelist lookup: %w", err)
	}

	var record *models.Version
	var err error
	if target.Version != "" {
		record, err = s.versions.GetByVersion(ctx, target.Version)
	} else {
		record, err = s.versions.GetLatest(ctx, target.Channel)
	}

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrScriptNotFound
		}
		return nil, fmt.Errorf("version registry: %w", err)
	}

	return record, nil
}
