package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
)

type snapshotReviewRepository struct {
	store *SnapshotStore
}

func NewSnapshotReviewRepository(store *SnapshotStore) repository.ReviewRepository {
	return &snapshotReviewRepository{
		store: store,
	}
}

func (r *snapshotReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	// Newest-first, same ordering as listings.
	copied := *review
	r.store.data.Reviews = append([]*entity.Review{&copied}, r.store.data.Reviews...)

	return r.store.save()
}

func (r *snapshotReviewRepository) ListByTarget(ctx context.Context, target string) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.data.Reviews {
		if review.Target == target {
			copied := *review
			reviews = append(reviews, &copied)
		}
	}

	return reviews, nil
}
