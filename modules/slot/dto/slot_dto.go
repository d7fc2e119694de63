package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// CreateSlotRequest mirrors the JSON body of POST /api/slots.
// VisibleToAll is a pointer so an absent flag can default to public while an
// explicit false stays false.
type CreateSlotRequest struct {
	Date             string      `json:"date" validate:"required"`
	StartTime        string      `json:"startTime" validate:"required"`
	EndTime          string      `json:"endTime" validate:"required"`
	Activities       []string    `json:"activities"`
	CustomActivity   string      `json:"customActivity"`
	Description      string      `json:"description"`
	Location         string      `json:"location"`
	MaxParticipants  *int        `json:"maxParticipants"`
	CreatedBy        string      `json:"createdBy" validate:"required"`
	VisibleToAll     *bool       `json:"visibleToAll"`
	VisibleToFriends bool        `json:"visibleToFriends"`
	VisibleToGroups  []uuid.UUID `json:"visibleToGroups"`
	NotifyByEmail    bool        `json:"notifyByEmail"`
}

type JoinSlotRequest struct {
	Participant string `json:"participant" validate:"required"`
}

type DeleteSlotRequest struct {
	UserRole  string `json:"userRole"`
	CreatedBy string `json:"createdBy"`
}

// ===================== Response DTOs =====================

type SlotResponse struct {
	ID               string      `json:"id"`
	Date             string      `json:"date"`
	StartTime        string      `json:"startTime"`
	EndTime          string      `json:"endTime"`
	Activities       []string    `json:"activities"`
	CustomActivity   *string     `json:"customActivity,omitempty"`
	Description      *string     `json:"description,omitempty"`
	Location         *string     `json:"location,omitempty"`
	MaxParticipants  *int        `json:"maxParticipants,omitempty"`
	CreatedBy        string      `json:"createdBy"`
	Participants     []string    `json:"participants"`
	VisibleToAll     bool        `json:"visibleToAll"`
	VisibleToFriends bool        `json:"visibleToFriends"`
	VisibleToGroups  []uuid.UUID `json:"visibleToGroups"`
	NotifyByEmail    bool        `json:"notifyByEmail"`
	CreatedAt        time.Time   `json:"created_at"`
}
