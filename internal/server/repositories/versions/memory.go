package versions

import (
	"context"
	"sync"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests. The lock is
// held across the flag flip and insert, so the single-latest invariant
// holds under concurrent publishes.
type MemoryRepository struct {
	mu       sync.RWMutex
	versions map[string]*models.Version
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{versions: make(map[string]*models.Version)}
}

func (r *MemoryRepository) GetLatest(ctx context.Context, ch models.Channel) (*models.Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.versions {
		if v.IsLatest(ch) {
			copied := *v
			return &copied, nil
		}
	}

	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByVersion(ctx context.Context, version string) (*models.Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.versions[version]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *v
	return &copied, nil
}

func (r *MemoryRepository) InsertAsLatest(ctx context.Context, version string, ch models.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.versions {
		if v.IsLatest(ch) {
			if ch == models.ChannelPre {
				v.LatestPre = false
			} else {
				v.LatestStable = false
			}
		}
	}

	r.versions[version] = &models.Version{
		Version:      version,
		LatestStable: ch == models.ChannelStable,
		LatestPre:    ch == models.ChannelPre,
	}

	return nil
}
