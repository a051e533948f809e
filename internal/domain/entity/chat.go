package entity

import (
	"sort"
	"strings"
	"time"
)

type Chat struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`

	Messages []*Message `json:"messages"`

	LastMessage   string    `json:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at"`

	// UnreadCount is keyed by participant username. Opening a chat zeroes the
	// opener's entry; sending bumps everyone else's.
	UnreadCount map[string]int `json:"unread_count"`

	Blocked bool `json:"blocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatID builds the symmetric identifier of a two-party chat: both orders of
// the same pair resolve to the same id.
func ChatID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

// HasParticipant is the membership check. Chat ids are derived from usernames,
// so id containment must never be used for membership: usernames can be
// substrings of each other.
func (c *Chat) HasParticipant(username string) bool {
	for _, p := range c.Participants {
		if p == username {
			return true
		}
	}
	return false
}

// OtherParticipant returns the peer of the given participant.
func (c *Chat) OtherParticipant(username string) string {
	for _, p := range c.Participants {
		if p != username {
			return p
		}
	}
	return ""
}
