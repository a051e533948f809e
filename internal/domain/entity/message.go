package entity

import "time"

// ReplyRef is a value snapshot of the message being replied to. Edits or
// deletions of the original never propagate into it.
type ReplyRef struct {
	MessageID string `json:"message_id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
}

type Message struct {
	ID      string    `json:"id"`
	ChatID  string    `json:"chat_id"`
	Sender  string    `json:"sender"`
	Text    string    `json:"text"`
	ReplyTo *ReplyRef `json:"reply_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
