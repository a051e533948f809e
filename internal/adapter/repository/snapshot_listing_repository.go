package repository

import (
	"context"
	"strconv"
	"time"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
)

type snapshotListingRepository struct {
	store *SnapshotStore
}

func NewSnapshotListingRepository(store *SnapshotStore) repository.ListingRepository {
	return &snapshotListingRepository{
		store: store,
	}
}

// newListingID derives the id from the creation timestamp, bumping past any
// collision so two listings created in the same instant stay distinct.
func newListingID(data *entity.Snapshot, t time.Time) string {
	n := t.UnixNano()
	for {
		id := strconv.FormatInt(n, 10)
		if findListing(data, id) < 0 {
			return id
		}
		n++
	}
}

func findListing(data *entity.Snapshot, id string) int {
	for i, l := range data.Listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (r *snapshotListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	listing.CreatedAt = now
	if listing.ID == "" {
		listing.ID = newListingID(r.store.data, now)
	}

	// Most-recent-first: new listings go to the head.
	r.store.data.Listings = append([]*entity.Listing{listing}, r.store.data.Listings...)

	return r.store.save()
}

func (r *snapshotListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := findListing(r.store.data, id)
	if i < 0 {
		return nil, errors.NotFound("Listing", nil)
	}

	copied := *r.store.data.Listings[i]
	return &copied, nil
}

func (r *snapshotListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	listings := make([]*entity.Listing, 0, len(r.store.data.Listings))
	for _, l := range r.store.data.Listings {
		copied := *l
		listings = append(listings, &copied)
	}

	return listings, nil
}

func (r *snapshotListingRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := findListing(r.store.data, id)
	if i < 0 {
		return errors.NotFound("Listing", nil)
	}

	r.store.data.Listings = append(r.store.data.Listings[:i], r.store.data.Listings[i+1:]...)

	return r.store.save()
}
