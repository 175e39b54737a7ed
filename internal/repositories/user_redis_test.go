package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

func TestUserRedisRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewUserRedisRepository(rdb)

	t.Run("Get missing user returns nil", func(t *testing.T) {
		rec, err := repo.GetByExternalID(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("Save and Get user", func(t *testing.T) {
		err := repo.Save(ctx, models.UserRecord{
			ExternalID: "111",
			WalletID:   "wallet-111",
			Seed:       "abandon ability able",
		})
		assert.NoError(t, err)

		rec, err := repo.GetByExternalID(ctx, "111")
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, "111", rec.ExternalID)
		assert.Equal(t, "wallet-111", rec.WalletID)
		assert.Equal(t, "abandon ability able", rec.Seed)
	})

	t.Run("Save with empty seed keeps stored seed", func(t *testing.T) {
		err := repo.Save(ctx, models.UserRecord{
			ExternalID: "111",
			WalletID:   "wallet-111-restarted",
		})
		assert.NoError(t, err)

		rec, err := repo.GetByExternalID(ctx, "111")
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, "wallet-111-restarted", rec.WalletID)
		assert.Equal(t, "abandon ability able", rec.Seed)
	})

	t.Run("Save with new seed overwrites stored seed", func(t *testing.T) {
		err := repo.Save(ctx, models.UserRecord{
			ExternalID: "111",
			WalletID:   "wallet-111-imported",
			Seed:       "zoo zone zero",
		})
		assert.NoError(t, err)

		rec, err := repo.GetByExternalID(ctx, "111")
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, "zoo zone zero", rec.Seed)
	})
}
