package entity

import "time"

type Review struct {
	ID     string `json:"id"`
	Target string `json:"target"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
