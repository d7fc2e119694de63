package repository

import (
	"context"
	"database/sql"
	"errors"

	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserRepository handles user database operations
type UserRepository struct {
	DB database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Search(ctx context.Context, search string) ([]entity.User, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, founding_member)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password_hash, role, founding_member, created_at, updated_at
	`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.FoundingMember)
	if err != nil {
		if !IsUniqueViolation(err) {
			logger.Error("UserRepository:Create", "error", err)
		}
		return nil, err
	}

	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, founding_member, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", "error", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, founding_member, created_at, updated_at
		FROM users WHERE username = $1
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByUsername", "error", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Search(ctx context.Context, search string) ([]entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, founding_member, created_at, updated_at
		FROM users
		WHERE $1 = '' OR username ILIKE '%' || $1 || '%'
		ORDER BY username
		LIMIT 50
	`

	var users []entity.User
	err := r.DB.SelectContext(ctx, &users, query, search)
	if err != nil {
		logger.Error("UserRepository:Search", "error", err)
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) (bool, error) {
	query := `DELETE FROM users WHERE username = $1`

	result, err := r.DB.ExecContext(ctx, query, username)
	if err != nil {
		logger.Error("UserRepository:Delete", "error", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("UserRepository:Delete - RowsAffected", "error", err)
		return false, err
	}

	return rowsAffected > 0, nil
}
