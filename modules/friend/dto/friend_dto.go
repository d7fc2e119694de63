package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type SendFriendRequestRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// ===================== Response DTOs =====================

type FriendRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type FriendListResponse struct {
	Username string   `json:"username"`
	Friends  []string `json:"friends"`
}
