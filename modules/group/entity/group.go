package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named collection of users. The creator is always a member and
// cannot leave; the only way out for a creator is deleting the group.
type Group struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Joined display attribute
	CreatorUsername string `db:"creator_username" json:"creator_username"`
}

// GroupMember is one row of the group_members join table.
type GroupMember struct {
	GroupID   uuid.UUID `db:"group_id" json:"group_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
