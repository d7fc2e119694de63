package service

import (
	"context"

	"playzio-api/core/cache"
	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/modules/group/dto"
	"playzio-api/modules/group/entity"
	"playzio-api/modules/group/mapper"
	"playzio-api/modules/group/repository"
	userservice "playzio-api/modules/user/service"

	"github.com/google/uuid"
)

// GroupService handles group business logic
type GroupService struct {
	repo  repository.GroupRepositoryInterface
	users userservice.UserServiceInterface
	cache cache.Cache
}

// GroupServiceInterface defines the service contract
type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, *errors.AppError)
	GetGroupsByUser(ctx context.Context, username string) ([]dto.GroupResponse, *errors.AppError)
	GetMembers(ctx context.Context, groupID uuid.UUID) (*dto.GroupMembersResponse, *errors.AppError)
	AddMember(ctx context.Context, groupID uuid.UUID, req *dto.AddMemberRequest) *errors.AppError
	RemoveMember(ctx context.Context, groupID uuid.UUID, username string, actor string) *errors.AppError
	DeleteGroup(ctx context.Context, groupID uuid.UUID, actor string, actorRole string) *errors.AppError

	// GroupIDsOfID is the membership lookup the visibility filter consumes;
	// results are cached with a short TTL.
	GroupIDsOfID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, *errors.AppError)
}

func NewGroupService(repo repository.GroupRepositoryInterface, users userservice.UserServiceInterface, c cache.Cache) GroupServiceInterface {
	return &GroupService{
		repo:  repo,
		users: users,
		cache: c,
	}
}

func (s *GroupService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Name == "" || req.CreatedBy == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name and createdBy are required", nil)
	}

	creator, appErr := s.users.ResolveUsername(ctx, req.CreatedBy)
	if appErr != nil {
		return nil, appErr
	}

	group := &entity.Group{
		Name:            req.Name,
		CreatedBy:       creator.ID,
		CreatorUsername: creator.Username,
	}
	if req.Description != "" {
		group.Description = &req.Description
	}

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create group failed", err)
	}

	_ = s.cache.InvalidateUser(ctx, creator.ID)

	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) GetGroupsByUser(ctx context.Context, username string) ([]dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return nil, appErr
	}

	groups, err := s.repo.GetGroupsByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get groups failed", err)
	}

	return mapper.ToGroupResponses(groups), nil
}

func (s *GroupService) GetMembers(ctx context.Context, groupID uuid.UUID) (*dto.GroupMembersResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.getGroup(ctx, groupID)
	if appErr != nil {
		return nil, appErr
	}

	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group members failed", err)
	}

	return mapper.ToGroupMembersResponse(group, members), nil
}

// AddMember adds a user to a group. Only the creator can add members.
func (s *GroupService) AddMember(ctx context.Context, groupID uuid.UUID, req *dto.AddMemberRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.getGroup(ctx, groupID)
	if appErr != nil {
		return appErr
	}
	if group.CreatorUsername != req.Actor {
		return errors.NewAppError(errors.ErrForbidden, "only the group creator can add members", nil)
	}

	member, appErr := s.users.ResolveUsername(ctx, req.User)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.AddMember(ctx, groupID, member.ID); err != nil {
		return errors.NewAppError(errors.ErrCreateFailed, "add member failed", err)
	}

	_ = s.cache.InvalidateUser(ctx, member.ID)

	return nil
}

// RemoveMember removes a user from a group. The creator can remove anyone
// but themselves; everyone else can only leave.
func (s *GroupService) RemoveMember(ctx context.Context, groupID uuid.UUID, username string, actor string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.getGroup(ctx, groupID)
	if appErr != nil {
		return appErr
	}
	if group.CreatorUsername == username {
		return errors.NewAppError(errors.ErrForbidden, "the creator cannot leave the group, only delete it", nil)
	}
	if actor != group.CreatorUsername && actor != username {
		return errors.NewAppError(errors.ErrForbidden, "only the group creator can remove other members", nil)
	}

	member, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return appErr
	}

	removed, err := s.repo.RemoveMember(ctx, groupID, member.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "remove member failed", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "user is not a member of this group", nil)
	}

	_ = s.cache.InvalidateUser(ctx, member.ID)

	return nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupID uuid.UUID, actor string, actorRole string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, appErr := s.getGroup(ctx, groupID)
	if appErr != nil {
		return appErr
	}
	if group.CreatorUsername != actor && actorRole != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrForbidden, "only the group creator or an admin can delete a group", nil)
	}

	deleted, err := s.repo.Delete(ctx, groupID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete group failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}

	return nil
}

func (s *GroupService) GroupIDsOfID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, *errors.AppError) {
	if ids, ok := s.cache.GetGroupIDs(ctx, userID); ok {
		return ids, nil
	}

	ids, err := s.repo.GetGroupIDsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group memberships failed", err)
	}

	_ = s.cache.SetGroupIDs(ctx, userID, ids)
	return ids, nil
}

func (s *GroupService) getGroup(ctx context.Context, groupID uuid.UUID) (*entity.Group, *errors.AppError) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	return group, nil
}
