package usecase

import (
	"context"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

type CreateReviewInput struct {
	Target string
	Rating int
	Text   string
}

func (uc *ReviewUseCase) Create(ctx context.Context, author string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5")
	}
	if input.Text == "" {
		return nil, errors.Validation("Review text is required")
	}
	if author == input.Target {
		return nil, errors.Validation("You cannot review yourself")
	}

	target, err := uc.userRepo.GetByUsername(ctx, input.Target)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		Target: target.Username,
		Author: author,
		Rating: input.Rating,
		Text:   input.Text,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Running average over the target's reviews.
	total := target.Rating * float64(target.ReviewCount)
	target.ReviewCount++
	target.Rating = (total + float64(input.Rating)) / float64(target.ReviewCount)

	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListForUser(ctx context.Context, target string) ([]*entity.Review, error) {
	if _, err := uc.userRepo.GetByUsername(ctx, target); err != nil {
		return nil, err
	}

	return uc.reviewRepo.ListByTarget(ctx, target)
}
