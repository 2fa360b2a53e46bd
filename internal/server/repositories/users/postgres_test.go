package users

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresGetByKey(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	username := "alice"
	syn := "F1"
	rows := sqlmock.NewRows([]string{"key", "username", "syn_fingerprint", "sw_fingerprint", "admin"}).
		AddRow("K1", username, syn, nil, true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, username, syn_fingerprint, sw_fingerprint, admin FROM users")).
		WithArgs("K1").
		WillReturnRows(rows)

	user, err := repo.GetByKey(context.Background(), "K1")
	require.NoError(t, err)

	assert.Equal(t, "K1", user.Key)
	require.NotNil(t, user.Username)
	assert.Equal(t, "alice", *user.Username)
	require.NotNil(t, user.SynFingerprint)
	assert.Equal(t, "F1", *user.SynFingerprint)
	assert.Nil(t, user.SwFingerprint)
	assert.True(t, user.Admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByKeyNotFound(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, username, syn_fingerprint, sw_fingerprint, admin FROM users")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"key", "username", "syn_fingerprint", "sw_fingerprint", "admin"}))

	_, err := repo.GetByKey(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresGetByKeyDBError(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, username, syn_fingerprint, sw_fingerprint, admin FROM users")).
		WithArgs("K1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByKey(context.Background(), "K1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresSetFingerprint(t *testing.T) {
	tests := []struct {
		name   string
		kind   models.FingerprintKind
		column string
	}{
		{"syn", models.FingerprintSyn, "syn_fingerprint"},
		{"sw", models.FingerprintSw, "sw_fingerprint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newSQLMockDB(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET "+tt.column+" = $2")).
				WithArgs("K1", "value").
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.SetFingerprint(context.Background(), "K1", tt.kind, "value")
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresSetFingerprintNotFound(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET syn_fingerprint = $2")).
		WithArgs("missing", "value").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetFingerprint(context.Background(), "missing", models.FingerprintSyn, "value")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
