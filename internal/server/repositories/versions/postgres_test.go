package versions

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

func newSQLMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresGetLatest(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	rows := sqlmock.NewRows([]string{"version", "latest_stable", "latest_pre"}).
		AddRow("2.0", true, false)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE latest_stable = TRUE")).
		WillReturnRows(rows)

	v, err := repo.GetLatest(context.Background(), models.ChannelStable)
	require.NoError(t, err)
	assert.Equal(t, "2.0", v.Version)
	assert.True(t, v.LatestStable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetLatestPreColumn(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	rows := sqlmock.NewRows([]string{"version", "latest_stable", "latest_pre"}).
		AddRow("2.1-rc", false, true)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE latest_pre = TRUE")).
		WillReturnRows(rows)

	v, err := repo.GetLatest(context.Background(), models.ChannelPre)
	require.NoError(t, err)
	assert.Equal(t, "2.1-rc", v.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByVersionNotFound(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE version = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"version", "latest_stable", "latest_pre"}))

	_, err := repo.GetByVersion(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresInsertAsLatest(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE versions SET latest_stable = FALSE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO versions (version, latest_stable, latest_pre)")).
		WithArgs("2.0", true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InsertAsLatest(context.Background(), "2.0", models.ChannelStable)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertAsLatestRollsBackOnInsertError(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE versions SET latest_pre = FALSE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO versions (version, latest_stable, latest_pre)")).
		WithArgs("2.1-rc", false, true).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.InsertAsLatest(context.Background(), "2.1-rc", models.ChannelPre)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
