package entity

import "time"

// PlaceholderImage is used when a listing is created without an image URL.
const PlaceholderImage = "/placeholder.svg"

type Listing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Price is free-form ("50,000 R$"); the marketplace never computes with it.
	Price    string `json:"price,omitempty"`
	ImageURL string `json:"image_url"`

	Seller       string  `json:"seller"`
	SellerRating float64 `json:"seller_rating,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
