package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequest is a friendship edge. The friends list is not materialized
// anywhere: it is the adjacency query over accepted edges, in either
// direction.
type FriendRequest struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	RequesterID uuid.UUID  `db:"requester_id" json:"requester_id"`
	AddresseeID uuid.UUID  `db:"addressee_id" json:"addressee_id"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	RespondedAt *time.Time `db:"responded_at" json:"responded_at,omitempty"`

	// Joined display attributes
	RequesterUsername string `db:"requester_username" json:"requester_username"`
	AddresseeUsername string `db:"addressee_username" json:"addressee_username"`
}
