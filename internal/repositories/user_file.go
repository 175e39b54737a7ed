package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hathorchat/hathor-wallet-relay/internal/logger"
	"github.com/hathorchat/hathor-wallet-relay/internal/models"
)

// UserFileRepository persists user records as a single JSON array file.
// Every save rewrites the whole file; the mutex serializes read-modify-write
// cycles so concurrent saves cannot interleave.
type UserFileRepository struct {
	path string
	mu   sync.Mutex
}

// NewUserFileRepository creates a file-backed user store at the given path.
func NewUserFileRepository(path string) *UserFileRepository {
	return &UserFileRepository{path: path}
}

// GetByExternalID returns the record for the given external ID, or nil when
// no record exists.
func (r *UserFileRepository) GetByExternalID(ctx context.Context, externalID string) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ExternalID == externalID {
			rec := users[i]
			return &rec, nil
		}
	}
	return nil, nil
}

// Save upserts a record keyed by ExternalID. A stored seed is never
// overwritten with an empty one.
func (r *UserFileRepository) Save(ctx context.Context, rec models.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	found := false
	for i := range users {
		if users[i].ExternalID == rec.ExternalID {
			if rec.Seed == "" && users[i].Seed != "" {
				rec.Seed = users[i].Seed
			}
			users[i] = rec
			found = true
			break
		}
	}
	if !found {
		users = append(users, rec)
	}

	err = r.write(users)

	logger.Log.Infow("user store save",
		"backend", "file",
		"externalID", rec.ExternalID,
		"walletID", rec.WalletID,
		"error", err,
	)

	return err
}

func (r *UserFileRepository) load() ([]models.UserRecord, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []models.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user store file: %w", err)
	}

	var users []models.UserRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user store file: %w", err)
	}
	return users, nil
}

// write replaces the file atomically via a temp file and rename.
func (r *UserFileRepository) write(users []models.UserRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create user store directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace user store file: %w", err)
	}
	return nil
}
