// Package versions persists the script version registry. Each backend is
// responsible for keeping the invariant that at most one record carries a
// channel's latest flag at any externally observable time.
package versions

import (
	"context"

	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

type Repository interface {
	// GetLatest returns the record currently flagged as the channel's
	// latest, or common.ErrorNotFound when the channel has none.
	GetLatest(ctx context.Context, ch models.Channel) (*models.Version, error)

	// GetByVersion returns the record for an exact version string, or
	// common.ErrorNotFound.
	GetByVersion(ctx context.Context, version string) (*models.Version, error)

	// InsertAsLatest clears the channel's current latest flag and inserts a
	// new record for version holding it, as one atomic step from the point
	// of view of concurrent callers. The caller must have checked that the
	// version does not exist yet.
	InsertAsLatest(ctx context.Context, version string, ch models.Channel) error
}
