package repositories

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// UserRedisRepository is the Redis-backed user store. Each user lives in a
// hash keyed by external ID.
type UserRedisRepository struct {
	client *redis.Client
}

// NewUserRedisRepository creates a Redis-backed user store.
func NewUserRedisRepository(client *redis.Client) *UserRedisRepository {
	return &UserRedisRepository{client: client}
}

func userKey(externalID string) string {
	return fmt.Sprintf("user:%s", externalID)
}

// GetByExternalID returns the record for the given external ID, or nil when
// no record exists.
func (r *UserRedisRepository) GetByExternalID(ctx context.Context, externalID string) (*models.UserRecord, error) {
	key := userKey(externalID)

	fields, err := r.client.HGetAll(ctx, key).Result()

	logger.Log.Infow("user store get",
		"backend", "redis",
		"key", key,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return &models.UserRecord{
		ExternalID: externalID,
		WalletID:   fields["wallet_id"],
		Seed:       fields["seed"],
	}, nil
}

// Save upserts a record keyed by external ID. A stored seed is never
// overwritten with an empty one.
func (r *UserRedisRepository) Save(ctx context.Context, rec models.UserRecord) error {
	key := userKey(rec.ExternalID)

	if rec.Seed == "" {
		stored, err := r.client.HGet(ctx, key, "seed").Result()
		if err != nil && err != redis.Nil {
			return err
		}
		rec.Seed = stored
	}

	err := r.client.HSet(ctx, key,
		"wallet_id", rec.WalletID,
		"seed", rec.Seed,
	).Err()

	logger.Log.Infow("user store save",
		"backend", "redis",
		"key", key,
		"walletID", rec.WalletID,
		"error", err,
	)

	return err
}
