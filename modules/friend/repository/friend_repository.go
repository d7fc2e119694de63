package repository

import (
	"context"
	"database/sql"

	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/modules/friend/entity"

	"github.com/google/uuid"
)

// FriendRepository handles friend-request database operations
type FriendRepository struct {
	DB database.Database
}

func NewFriendRepository(db database.Database) *FriendRepository {
	return &FriendRepository{DB: db}
}

// FriendRepositoryInterface defines the repository contract
type FriendRepositoryInterface interface {
	Create(ctx context.Context, req *entity.FriendRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)
	GetPendingForUser(ctx context.Context, userID uuid.UUID) ([]entity.FriendRequest, error)
	EdgeExists(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	GetFriendUsernames(ctx context.Context, userID uuid.UUID) ([]string, error)
	RemoveFriendship(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error)
}

const friendRequestColumns = `
	fr.id, fr.requester_id, fr.addressee_id, fr.status, fr.created_at, fr.responded_at,
	req.username AS requester_username, addr.username AS addressee_username
`

const friendRequestJoins = `
	FROM friend_requests fr
	JOIN users req ON req.id = fr.requester_id
	JOIN users addr ON addr.id = fr.addressee_id
`

func (r *FriendRepository) Create(ctx context.Context, req *entity.FriendRequest) error {
	query := `
		INSERT INTO friend_requests (requester_id, addressee_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	row := r.DB.QueryRowContext(ctx, query, req.RequesterID, req.AddresseeID, req.Status)
	if err := row.Scan(&req.ID, &req.CreatedAt); err != nil {
		logger.Error("FriendRepository:Create", "error", err)
		return err
	}
	return nil
}

func (r *FriendRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	query := `SELECT ` + friendRequestColumns + friendRequestJoins + `WHERE fr.id = $1`

	var req entity.FriendRequest
	err := r.DB.GetContext(ctx, &req, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("FriendRepository:GetByID", "error", err)
		return nil, err
	}

	return &req, nil
}

func (r *FriendRepository) GetPendingForUser(ctx context.Context, userID uuid.UUID) ([]entity.FriendRequest, error) {
	query := `SELECT ` + friendRequestColumns + friendRequestJoins + `
		WHERE fr.addressee_id = $1 AND fr.status = 'pending'
		ORDER BY fr.created_at DESC
	`

	var requests []entity.FriendRequest
	err := r.DB.SelectContext(ctx, &requests, query, userID)
	if err != nil {
		logger.Error("FriendRepository:GetPendingForUser", "error", err)
		return nil, err
	}

	return requests, nil
}

// EdgeExists reports whether a pending or accepted edge already links the two
// users, in either direction.
func (r *FriendRepository) EdgeExists(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE status IN ('pending', 'accepted')
			  AND ((requester_id = $1 AND addressee_id = $2)
			    OR (requester_id = $2 AND addressee_id = $1))
		)
	`

	var exists bool
	err := r.DB.GetContext(ctx, &exists, query, a, b)
	if err != nil {
		logger.Error("FriendRepository:EdgeExists", "error", err)
		return false, err
	}

	return exists, nil
}

func (r *FriendRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE friend_requests
		SET status = $2, responded_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("FriendRepository:UpdateStatus", "error", err)
		return err
	}
	return nil
}

// GetFriendUsernames returns the usernames on the far side of every accepted
// edge touching the user.
func (r *FriendRepository) GetFriendUsernames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT u.username
		FROM friend_requests fr
		JOIN users u ON u.id = CASE WHEN fr.requester_id = $1 THEN fr.addressee_id ELSE fr.requester_id END
		WHERE fr.status = 'accepted'
		  AND (fr.requester_id = $1 OR fr.addressee_id = $1)
		ORDER BY u.username
	`

	var usernames []string
	err := r.DB.SelectContext(ctx, &usernames, query, userID)
	if err != nil {
		logger.Error("FriendRepository:GetFriendUsernames", "error", err)
		return nil, err
	}

	return usernames, nil
}

func (r *FriendRepository) RemoveFriendship(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error) {
	query := `
		DELETE FROM friend_requests
		WHERE status = 'accepted'
		  AND ((requester_id = $1 AND addressee_id = $2)
		    OR (requester_id = $2 AND addressee_id = $1))
	`

	result, err := r.DB.ExecContext(ctx, query, a, b)
	if err != nil {
		logger.Error("FriendRepository:RemoveFriendship", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("FriendRepository:RemoveFriendship - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}
