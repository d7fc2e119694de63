package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Slot is one proposed availability window. Date and times are kept as
// separate wire-format strings ("2006-01-02", "15:04") so the expiry check
// is a plain lexicographic comparison, matching how clients send them.
type Slot struct {
	ID              string         `db:"id" json:"id"`
	Date            string         `db:"date" json:"date"`
	StartTime       string         `db:"start_time" json:"startTime"`
	EndTime         string         `db:"end_time" json:"endTime"`
	Activities      pq.StringArray `db:"activities" json:"activities"`
	CustomActivity  *string        `db:"custom_activity" json:"customActivity,omitempty"`
	Description     *string        `db:"description" json:"description,omitempty"`
	Location        *string        `db:"location" json:"location,omitempty"`
	MaxParticipants *int           `db:"max_participants" json:"maxParticipants,omitempty"`

	CreatedByID uuid.UUID `db:"created_by" json:"created_by_id"`
	// CreatedBy is the creator's username, joined from users.
	CreatedBy string `db:"creator_username" json:"createdBy"`

	VisibleToAll     bool `db:"visible_to_all" json:"visibleToAll"`
	VisibleToFriends bool `db:"visible_to_friends" json:"visibleToFriends"`
	NotifyByEmail    bool `db:"notify_by_email" json:"notifyByEmail"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Hydrated from slot_participants and slot_groups.
	Participants []string    `db:"-" json:"participants"`
	GroupIDs     []uuid.UUID `db:"-" json:"visibleToGroups"`
}
