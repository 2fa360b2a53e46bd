package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

func strPtr(s string) *string { return &s }

func TestMemoryGetByKey(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add(&models.User{Key: "K1", Username: strPtr("alice"), SynFingerprint: strPtr("F1")})

	user, err := repo.GetByKey(context.Background(), "K1")
	require.NoError(t, err)
	assert.Equal(t, "F1", user.Fingerprint(models.FingerprintSyn))
	assert.Equal(t, "", user.Fingerprint(models.FingerprintSw))

	_, err = repo.GetByKey(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemorySetFingerprint(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add(&models.User{Key: "K1", Username: strPtr("alice")})

	require.NoError(t, repo.SetFingerprint(context.Background(), "K1", models.FingerprintSw, "SW1"))

	user, err := repo.GetByKey(context.Background(), "K1")
	require.NoError(t, err)
	assert.Equal(t, "SW1", user.Fingerprint(models.FingerprintSw))

	err = repo.SetFingerprint(context.Background(), "missing", models.FingerprintSyn, "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
