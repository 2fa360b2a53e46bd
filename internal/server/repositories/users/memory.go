package users

import (
	"context"
	"sync"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

// Add seeds a record, replacing any existing one with the same key.
func (r *MemoryRepository) Add(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Key] = user
}

func (r *MemoryRepository) GetByKey(ctx context.Context, key string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *MemoryRepository) SetFingerprint(ctx context.Context, key string, kind models.FingerprintKind, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[key]
	if !ok {
		return common.ErrorNotFound
	}

	if kind == models.FingerprintSw {
		user.SwFingerprint = &value
	} else {
		user.SynFingerprint = &value
	}

	return nil
}
