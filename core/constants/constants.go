package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Request handling
const (
	DefaultRequestTimeout = 10 * time.Second
)

// Wire formats for slot dates and times. Slots keep date and times as
// separate fields so the expiry check stays a plain string comparison.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Friend request statuses
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

// Relationship cache
const (
	RedisKeyFriends  = "rel:friends:"
	RedisKeyGroupIDs = "rel:groups:"
	RelationCacheTTL = 60 * time.Second
)

// Database pool defaults
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)
