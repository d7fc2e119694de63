package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type SendMessageRequest struct {
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type MarkReadRequest struct {
	User string `json:"user" validate:"required"`
	With string `json:"with" validate:"required"`
}

// ===================== Response DTOs =====================

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Username string `json:"username"`
	Unread   int    `json:"unread"`
}
