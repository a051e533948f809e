package repository

import (
	"context"

	"rotrade/internal/domain/entity"
)

type ListingRepository interface {
	// Create prepends: listings are kept most-recent-first.
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context) ([]*entity.Listing, error)
	Delete(ctx context.Context, id string) error
}
