package versions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/dbx"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

// PostgresRepository keeps the whole repository on *sql.DB rather than
// dbx.DBTX because InsertAsLatest opens its own transaction.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetLatest(ctx context.Context, ch models.Channel) (*models.Version, error) {
	// column name comes from a closed enum, not caller input
	query := fmt.Sprintf(
		`SELECT version, latest_stable, latest_pre FROM versions
		 WHERE %s = TRUE
		 `, flagColumn(ch))

	return r.scanOne(r.db.QueryRowContext(ctx, query))
}

func (r *PostgresRepository) GetByVersion(ctx context.Context, version string) (*models.Version, error) {
	query :=
		`SELECT version, latest_stable, latest_pre FROM versions
		 WHERE version = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, version))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Version, error) {
	v := &models.Version{}
	err := row.Scan(&v.Version, &v.LatestStable, &v.LatestPre)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) InsertAsLatest(ctx context.Context, version string, ch models.Channel) error {
	column := flagColumn(ch)

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		clear := fmt.Sprintf(
			`UPDATE versions SET %s = FALSE
			 WHERE %s = TRUE
			 `, column, column)
		if _, err := tx.ExecContext(ctx, clear); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		insert :=
			`INSERT INTO versions (version, latest_stable, latest_pre)
			 VALUES ($1, $2, $3)
			 `
		_, err := tx.ExecContext(ctx, insert, version,
			ch == models.ChannelStable, ch == models.ChannelPre)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		return nil
	})
}

func flagColumn(ch models.Channel) string {
	if ch == models.ChannelPre {
		return "latest_pre"
	}
	return "latest_stable"
}
