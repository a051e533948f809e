package entity

import (
	"time"
)

// ReportThreshold is the number of reports after which an account is blocked.
const ReportThreshold = 5

type User struct {
	Username string `json:"username"`
	// Password is kept as entered. This is a mockup-grade account store, not a
	// real credential system.
	Password string `json:"password"`

	Rating      float64 `json:"rating"`
	Deals       int     `json:"deals"`
	ReviewCount int     `json:"review_count"`
	Reports     int     `json:"reports"`
	IsBlocked   bool    `json:"is_blocked"`

	AvatarURL string `json:"avatar_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
