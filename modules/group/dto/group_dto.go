package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy" validate:"required"`
}

type AddMemberRequest struct {
	User  string `json:"user" validate:"required"`
	Actor string `json:"actor" validate:"required"`
}

// ===================== Response DTOs =====================

type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"created_at"`
}

type GroupMembersResponse struct {
	GroupID uuid.UUID `json:"group_id"`
	Members []string  `json:"members"`
}
