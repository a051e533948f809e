package repository

import (
	"context"

	"rotrade/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByTarget(ctx context.Context, target string) ([]*entity.Review, error)
}
