package service

import (
	"context"

	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/core/logger"
	"playzio-api/core/utils"
	"playzio-api/modules/user/dto"
	"playzio-api/modules/user/entity"
	"playzio-api/modules/user/mapper"
	"playzio-api/modules/user/repository"
)

// UserService handles account business logic
type UserService struct {
	repo repository.UserRepositoryInterface
}

// UserServiceInterface defines the service contract
type UserServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	GetByUsername(ctx context.Context, username string) (*dto.UserResponse, *errors.AppError)
	Search(ctx context.Context, search string) ([]dto.UserResponse, *errors.AppError)
	Delete(ctx context.Context, username string) *errors.AppError

	// ResolveUsername is the username -> user lookup other modules use to
	// translate the API's username surface into stable ids.
	ResolveUsername(ctx context.Context, username string) (*entity.User, *errors.AppError)
}

func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Username == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "username and password are required", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("UserService:Register:HashPassword", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         constants.RoleUser,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "username already taken", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create user failed", err)
	}

	return mapper.ToUserResponse(created), nil
}

// Login verifies credentials and issues an access token. No session state is
// kept server side; the token is the whole login artifact.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid username or password", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		logger.Error("UserService:Login:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}

	return &dto.LoginResponse{
		User:        *mapper.ToUserResponse(user),
		AccessToken: token,
	}, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, *errors.AppError) {
	user, appErr := s.ResolveUsername(ctx, username)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToUserResponse(user), nil
}

func (s *UserService) Search(ctx context.Context, search string) ([]dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	users, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "search users failed", err)
	}

	return mapper.ToUserResponses(users), nil
}

func (s *UserService) Delete(ctx context.Context, username string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, username)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete user failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	return nil
}

func (s *UserService) ResolveUsername(ctx context.Context, username string) (*entity.User, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return user, nil
}
