package entity

import (
	coreEntity "playzio-api/core/entity"

	"github.com/google/uuid"
)

// User is an account row. The id is the stable identifier used by every
// foreign key; username is a unique but mutable display attribute.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Email          *string   `db:"email" json:"email,omitempty"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Role           string    `db:"role" json:"role"`
	FoundingMember bool      `db:"founding_member" json:"founding_member"`
	coreEntity.BaseEntity
}
