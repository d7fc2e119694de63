package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ===================== Response DTOs =====================

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          *string   `json:"email,omitempty"`
	Role           string    `json:"role"`
	FoundingMember bool      `json:"founding_member"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}
