package service

import (
	"context"
	"fmt"

	"playzio-api/core/cache"
	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/core/queue"
	"playzio-api/modules/friend/dto"
	"playzio-api/modules/friend/entity"
	"playzio-api/modules/friend/mapper"
	"playzio-api/modules/friend/repository"
	userservice "playzio-api/modules/user/service"

	"github.com/google/uuid"
)

// Notifier enqueues in-app notification deliveries.
type Notifier interface {
	EnqueueNotification(ctx context.Context, payload queue.NotificationPayload)
}

// FriendService handles friendship business logic
type FriendService struct {
	repo     repository.FriendRepositoryInterface
	users    userservice.UserServiceInterface
	cache    cache.Cache
	notifier Notifier
}

// FriendServiceInterface defines the service contract
type FriendServiceInterface interface {
	SendRequest(ctx context.Context, req *dto.SendFriendRequestRequest) (*dto.FriendRequestResponse, *errors.AppError)
	Accept(ctx context.Context, id uuid.UUID, actingUser string) (*dto.FriendRequestResponse, *errors.AppError)
	Decline(ctx context.Context, id uuid.UUID, actingUser string) (*dto.FriendRequestResponse, *errors.AppError)
	ListPending(ctx context.Context, username string) ([]dto.FriendRequestResponse, *errors.AppError)
	ListFriends(ctx context.Context, username string) (*dto.FriendListResponse, *errors.AppError)
	RemoveFriend(ctx context.Context, username string, friendUsername string) *errors.AppError

	// FriendsOfID is the adjacency lookup the visibility filter consumes;
	// results are cached with a short TTL.
	FriendsOfID(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError)
}

func NewFriendService(repo repository.FriendRepositoryInterface, users userservice.UserServiceInterface, c cache.Cache, notifier Notifier) FriendServiceInterface {
	return &FriendService{
		repo:     repo,
		users:    users,
		cache:    c,
		notifier: notifier,
	}
}

func (s *FriendService) SendRequest(ctx context.Context, req *dto.SendFriendRequestRequest) (*dto.FriendRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.From == "" || req.To == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "from and to are required", nil)
	}
	if req.From == req.To {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot send a friend request to yourself", nil)
	}

	requester, appErr := s.users.ResolveUsername(ctx, req.From)
	if appErr != nil {
		return nil, appErr
	}
	addressee, appErr := s.users.ResolveUsername(ctx, req.To)
	if appErr != nil {
		return nil, appErr
	}

	exists, err := s.repo.EdgeExists(ctx, requester.ID, addressee.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check friend request failed", err)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "friend request or friendship already exists", nil)
	}

	request := &entity.FriendRequest{
		RequesterID:       requester.ID,
		AddresseeID:       addressee.ID,
		Status:            constants.FriendRequestPending,
		RequesterUsername: requester.Username,
		AddresseeUsername: addressee.Username,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create friend request failed", err)
	}

	s.notifier.EnqueueNotification(ctx, queue.NotificationPayload{
		UserID:  addressee.ID,
		Title:   "New friend request",
		Message: fmt.Sprintf("%s wants to be your friend", requester.Username),
		Type:    "friend_request",
	})

	return mapper.ToFriendRequestResponse(request), nil
}

// respond handles accept and decline; only the addressee may respond.
func (s *FriendService) respond(ctx context.Context, id uuid.UUID, actingUser string, status string) (*dto.FriendRequestResponse, *errors.AppError) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get friend request failed", err)
	}
	if request == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "friend request not found", nil)
	}
	if request.AddresseeUsername != actingUser {
		return nil, errors.NewAppError(errors.ErrForbidden, "only the addressee can respond to a friend request", nil)
	}
	if request.Status != constants.FriendRequestPending {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "friend request already responded to", nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update friend request failed", err)
	}
	request.Status = status

	// The friends adjacency changed for both sides.
	_ = s.cache.InvalidateUser(ctx, request.RequesterID)
	_ = s.cache.InvalidateUser(ctx, request.AddresseeID)

	if status == constants.FriendRequestAccepted {
		s.notifier.EnqueueNotification(ctx, queue.NotificationPayload{
			UserID:  request.RequesterID,
			Title:   "Friend request accepted",
			Message: fmt.Sprintf("%s accepted your friend request", request.AddresseeUsername),
			Type:    "friend_accept",
		})
	}

	return mapper.ToFriendRequestResponse(request), nil
}

func (s *FriendService) Accept(ctx context.Context, id uuid.UUID, actingUser string) (*dto.FriendRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()
	return s.respond(ctx, id, actingUser, constants.FriendRequestAccepted)
}

func (s *FriendService) Decline(ctx context.Context, id uuid.UUID, actingUser string) (*dto.FriendRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()
	return s.respond(ctx, id, actingUser, constants.FriendRequestDeclined)
}

func (s *FriendService) ListPending(ctx context.Context, username string) ([]dto.FriendRequestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return nil, appErr
	}

	requests, err := s.repo.GetPendingForUser(ctx, user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get pending friend requests failed", err)
	}

	return mapper.ToFriendRequestResponses(requests), nil
}

func (s *FriendService) ListFriends(ctx context.Context, username string) (*dto.FriendListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return nil, appErr
	}

	friends, appErr := s.FriendsOfID(ctx, user.ID)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.FriendListResponse{
		Username: user.Username,
		Friends:  friends,
	}, nil
}

func (s *FriendService) RemoveFriend(ctx context.Context, username string, friendUsername string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return appErr
	}
	friendUser, appErr := s.users.ResolveUsername(ctx, friendUsername)
	if appErr != nil {
		return appErr
	}

	removed, err := s.repo.RemoveFriendship(ctx, user.ID, friendUser.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "remove friendship failed", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "friendship not found", nil)
	}

	_ = s.cache.InvalidateUser(ctx, user.ID)
	_ = s.cache.InvalidateUser(ctx, friendUser.ID)

	return nil
}

func (s *FriendService) FriendsOfID(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError) {
	if friends, ok := s.cache.GetFriends(ctx, userID); ok {
		return friends, nil
	}

	friends, err := s.repo.GetFriendUsernames(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get friends failed", err)
	}

	_ = s.cache.SetFriends(ctx, userID, friends)
	return friends, nil
}
