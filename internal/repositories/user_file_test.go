package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

func TestUserFileRepository_GetMissing(t *testing.T) {
	repo := NewUserFileRepository(filepath.Join(t.TempDir(), "users.json"))

	rec, err := repo.GetByExternalID(context.Background(), "12345")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestUserFileRepository_SaveAndGet(t *testing.T) {
	repo := NewUserFileRepository(filepath.Join(t.TempDir(), "users.json"))
	ctx := context.Background()

	err := repo.Save(ctx, models.UserRecord{
		ExternalID: "12345",
		WalletID:   "wallet-1",
		Seed:       "some seed words",
	})
	assert.NoError(t, err)

	rec, err := repo.GetByExternalID(ctx, "12345")
	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, "wallet-1", rec.WalletID)
	assert.Equal(t, "some seed words", rec.Seed)
}

func TestUserFileRepository_SeedPreservedOnEmptyUpdate(t *testing.T) {
	repo := NewUserFileRepository(filepath.Join(t.TempDir(), "users.json"))
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, models.UserRecord{
		ExternalID: "12345",
		WalletID:   "wallet-1",
		Seed:       "original seed",
	}))

	// A later save without a seed must not erase the stored one.
	assert.NoError(t, repo.Save(ctx, models.UserRecord{
		ExternalID: "12345",
		WalletID:   "wallet-1",
	}))

	rec, err := repo.GetByExternalID(ctx, "12345")
	assert.NoError(t, err)
	assert.Equal(t, "original seed", rec.Seed)
}

func TestUserFileRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	repo := NewUserFileRepository(path)
	_, err := repo.GetByExternalID(context.Background(), "12345")
	assert.Error(t, err)
}

func TestUserFileRepository_ConcurrentSaves(t *testing.T) {
	repo := NewUserFileRepository(filepath.Join(t.TempDir(), "users.json"))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("user-%d", i)
			assert.NoError(t, repo.Save(ctx, models.UserRecord{
				ExternalID: id,
				WalletID:   "wallet-" + id,
				Seed:       "seed",
			}))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("user-%d", i)
		rec, err := repo.GetByExternalID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, rec, "record for %s should survive concurrent saves", id)
		assert.Equal(t, "wallet-"+id, rec.WalletID)
	}
}
