package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rotrade/internal/domain/entity"
	"rotrade/pkg/errors"
	"rotrade/pkg/logger"
)

const snapshotFile = "rotrade.json"

// SnapshotStore owns the in-memory working copy of the persisted state. It is
// loaded once at startup and rewritten in full after every mutation; the
// repositories share it and never touch the file directly.
type SnapshotStore struct {
	path string

	mu   sync.RWMutex
	data *entity.Snapshot
}

func NewSnapshotStore(dataDir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Internal("Failed to create data directory", err)
	}

	s := &SnapshotStore{
		path: filepath.Join(dataDir, snapshotFile),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SnapshotStore) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		// First run: seed demo data and persist it.
		logger.Info("No snapshot at %s, seeding demo data", s.path)
		s.data = seedSnapshot()
		return s.save()
	}
	if err != nil {
		return errors.Internal("Failed to read snapshot", err)
	}

	snapshot := entity.NewSnapshot()
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return errors.Internal("Failed to parse snapshot", err)
	}

	if snapshot.Users == nil {
		snapshot.Users = make(map[string]*entity.User)
	}
	if snapshot.Chats == nil {
		snapshot.Chats = make(map[string]*entity.Chat)
	}

	s.data = snapshot
	return nil
}

// save serializes the whole snapshot. Write-to-temp plus rename keeps the blob
// intact if the process dies mid-write.
func (s *SnapshotStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Internal("Failed to serialize snapshot", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Internal("Failed to write snapshot", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Internal("Failed to replace snapshot", err)
	}

	return nil
}

func seedSnapshot() *entity.Snapshot {
	now := time.Now()

	snapshot := entity.NewSnapshot()
	snapshot.Users["TraderPro"] = &entity.User{
		Username:    "TraderPro",
		Password:    "demo123",
		Rating:      4.8,
		Deals:       24,
		ReviewCount: 18,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	snapshot.Listings = append(snapshot.Listings, &entity.Listing{
		ID:           newListingID(snapshot, now),
		Title:        "Dominus Empyreus",
		Description:  "Rare hat, excellent condition",
		Price:        "50,000 R$",
		ImageURL:     entity.PlaceholderImage,
		Seller:       "TraderPro",
		SellerRating: 4.8,
		CreatedAt:    now,
	})

	return snapshot
}
