package handler

import (
	"github.com/labstack/echo/v4"

	"rotrade/internal/usecase"
	"rotrade/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url" validate:"omitempty,url|startswith=/"`
}

// ListListings serves both the full feed and search: ?q= filters by substring
// over title and description.
func (h *ListingHandler) ListListings(c echo.Context) error {
	listings, err := h.listingUseCase.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	username := c.Get("username").(string)

	listings, err := h.listingUseCase.ListBySeller(c.Request().Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	username := c.Get("username").(string)

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), username, usecase.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	username := c.Get("username").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), username, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, nil)
}
