package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// UserPostgresRepository is the Postgres-backed user store.
type UserPostgresRepository struct {
	db *sqlx.DB
}

// NewUserPostgresRepository creates a Postgres-backed user store.
func NewUserPostgresRepository(db *sqlx.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

// GetByExternalID returns the record for the given external ID, or nil when
// no record exists.
func (r *UserPostgresRepository) GetByExternalID(ctx context.Context, externalID string) (*models.UserRecord, error) {
	const query = `
		SELECT external_id, wallet_id, seed
		FROM users
		WHERE external_id = $1
	`

	var rec models.UserRecord
	err := r.db.GetContext(ctx, &rec, query, externalID)

	logger.Log.Infow("user store get",
		"backend", "postgres",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{externalID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save upserts a record keyed by external_id. A stored seed is never
// overwritten with an empty one.
func (r *UserPostgresRepository) Save(ctx context.Context, rec models.UserRecord) error {
	const query = `
		INSERT INTO users (external_id, wallet_id, seed, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (external_id) DO UPDATE
		SET wallet_id = EXCLUDED.wallet_id,
		    seed = CASE WHEN EXCLUDED.seed = '' THEN users.seed ELSE EXCLUDED.seed END,
		    updated_at = NOW()
	`
	args := []any{rec.ExternalID, rec.WalletID, rec.Seed}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user store save",
		"backend", "postgres",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rec.ExternalID, rec.WalletID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
