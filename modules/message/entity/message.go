package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one direct message between two friends.
type Message struct {
	ID          uuid.UUID `db:"id" json:"id"`
	SenderID    uuid.UUID `db:"sender_id" json:"sender_id"`
	RecipientID uuid.UUID `db:"recipient_id" json:"recipient_id"`
	Content     string    `db:"content" json:"content"`
	Read        bool      `db:"read" json:"read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Joined from users.
	SenderUsername    string `db:"sender_username" json:"from"`
	RecipientUsername string `db:"recipient_username" json:"to"`
}
