package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/dbx"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByKey(ctx context.Context, key string) (*models.User, error) {
	query :=
		`SELECT key, username, syn_fingerprint, sw_fingerprint, admin FROM users
		 WHERE key = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&user.Key, &user.Username, &user.SynFingerprint, &user.SwFingerprint, &user.Admin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) SetFingerprint(ctx context.Context, key string, kind models.FingerprintKind, value string) error {
	// column name comes from a closed enum, not caller input
	query := fmt.Sprintf(
		`UPDATE users SET %s = $2
		 WHERE key = $1
		 `, fingerprintColumn(kind))

	res, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func fingerprintColumn(kind models.FingerprintKind) string {
	if kind == models.FingerprintSw {
		return "sw_fingerprint"
	}
	return "syn_fingerprint"
}
