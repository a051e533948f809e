package usecase

import (
	"context"
	"strings"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
	"rotrade/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Title       string
	Description string
	Price       string
	ImageURL    string
}

func (uc *ListingUseCase) Create(ctx context.Context, seller string, input CreateListingInput) (*entity.Listing, error) {
	if input.Title == "" || input.Description == "" {
		return nil, errors.Validation("Title and description are required")
	}

	user, err := uc.userRepo.GetByUsername(ctx, seller)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = entity.PlaceholderImage
	}

	listing := &entity.Listing{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     imageURL,
		Seller:       user.Username,
		SellerRating: user.Rating,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// Delete is owner-only. The seller check lives here, below the presentation
// layer, so no client state can bypass it.
func (uc *ListingUseCase) Delete(ctx context.Context, caller, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.Seller != caller {
		logger.Warn("User %s attempted to delete listing %s owned by %s", caller, id, listing.Seller)
		return errors.Forbidden("Only the seller can delete a listing", nil)
	}

	return uc.listingRepo.Delete(ctx, id)
}

// Search filters over title and description, case-insensitive, recomputed on
// every call. An empty query returns everything.
func (uc *ListingUseCase) Search(ctx context.Context, query string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return listings, nil
	}

	q := strings.ToLower(query)
	filtered := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(l.Description), q) {
			filtered = append(filtered, l)
		}
	}

	return filtered, nil
}

func (uc *ListingUseCase) ListBySeller(ctx context.Context, seller string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]*entity.Listing, 0)
	for _, l := range listings {
		if l.Seller == seller {
			mine = append(mine, l)
		}
	}

	return mine, nil
}
