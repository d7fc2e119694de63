package repository

import (
	"context"
	"database/sql"

	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/modules/group/entity"

	"github.com/google/uuid"
)

// GroupRepository handles group database operations
type GroupRepository struct {
	DB database.Database
}

func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{DB: db}
}

// GroupRepositoryInterface defines the repository contract
type GroupRepositoryInterface interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	GetGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Group, error)
	GetGroupIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.GroupMember, error)
	AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Create inserts the group and its creator membership in one transaction.
func (r *GroupRepository) Create(ctx context.Context, group *entity.Group) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GroupRepository:Create - BeginTx", "error", err)
		return err
	}
	defer tx.Rollback()

	insertGroup := `
		INSERT INTO groups (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	row := tx.QueryRowContext(ctx, insertGroup, group.Name, group.Description, group.CreatedBy)
	if err := row.Scan(&group.ID, &group.CreatedAt); err != nil {
		logger.Error("GroupRepository:Create - Insert", "error", err)
		return err
	}

	insertMember := `
		INSERT INTO group_members (group_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (group_id, user_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insertMember, group.ID, group.CreatedBy); err != nil {
		logger.Error("GroupRepository:Create - InsertMember", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("GroupRepository:Create - Commit", "error", err)
		return err
	}

	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.created_by, g.created_at,
		       u.username AS creator_username
		FROM groups g
		JOIN users u ON u.id = g.created_by
		WHERE g.id = $1
	`

	var group entity.Group
	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetByID", "error", err)
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepository) GetGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.created_by, g.created_at,
		       u.username AS creator_username
		FROM groups g
		JOIN users u ON u.id = g.created_by
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC
	`

	var groups []entity.Group
	err := r.DB.SelectContext(ctx, &groups, query, userID)
	if err != nil {
		logger.Error("GroupRepository:GetGroupsByUserID", "error", err)
		return nil, err
	}

	return groups, nil
}

func (r *GroupRepository) GetGroupIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT group_id FROM group_members WHERE user_id = $1`

	var ids []uuid.UUID
	err := r.DB.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		logger.Error("GroupRepository:GetGroupIDsByUserID", "error", err)
		return nil, err
	}

	return ids, nil
}

func (r *GroupRepository) GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.GroupMember, error) {
	query := `
		SELECT gm.group_id, gm.user_id, gm.created_at, u.username
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.created_at
	`

	var members []entity.GroupMember
	err := r.DB.SelectContext(ctx, &members, query, groupID)
	if err != nil {
		logger.Error("GroupRepository:GetMembers", "error", err)
		return nil, err
	}

	return members, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	query := `
		INSERT INTO group_members (group_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (group_id, user_id) DO NOTHING
	`

	_, err := r.DB.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		logger.Error("GroupRepository:AddMember", "error", err)
		return err
	}
	return nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		logger.Error("GroupRepository:RemoveMember", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:RemoveMember - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM groups WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("GroupRepository:Delete", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:Delete - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}
