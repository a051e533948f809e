package repository

import (
	"context"
	"time"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
)

type snapshotUserRepository struct {
	store *SnapshotStore
}

func NewSnapshotUserRepository(store *SnapshotStore) repository.UserRepository {
	return &snapshotUserRepository{
		store: store,
	}
}

func (r *snapshotUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.Users[user.Username]; exists {
		return errors.Conflict("Username already taken")
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	r.store.data.Users[user.Username] = &copied

	return r.store.save()
}

func (r *snapshotUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.data.Users[username]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	copied := *user
	return &copied, nil
}

func (r *snapshotUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.data.Users[user.Username]; !ok {
		return errors.NotFound("User", nil)
	}

	user.UpdatedAt = time.Now()
	copied := *user
	r.store.data.Users[user.Username] = &copied

	return r.store.save()
}
