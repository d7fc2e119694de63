package service

import (
	"context"

	"playzio-api/core/cache"
	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/modules/message/dto"
	"playzio-api/modules/message/entity"
	"playzio-api/modules/message/mapper"
	"playzio-api/modules/message/repository"
	userentity "playzio-api/modules/user/entity"

	"github.com/google/uuid"
)

// UserResolver translates usernames into stable user ids.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (*userentity.User, *errors.AppError)
}

// FriendLister returns the usernames of a user's accepted friends.
type FriendLister interface {
	GetFriendUsernames(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// MessageService handles direct message business logic
type MessageService struct {
	repo    repository.MessageRepositoryInterface
	users   UserResolver
	friends FriendLister
	cache   cache.Cache
}

// MessageServiceInterface defines the service contract
type MessageServiceInterface interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, *errors.AppError)
	GetConversation(ctx context.Context, username string, withUsername string) ([]dto.MessageResponse, *errors.AppError)
	UnreadCount(ctx context.Context, username string) (*dto.UnreadCountResponse, *errors.AppError)
	MarkRead(ctx context.Context, req *dto.MarkReadRequest) *errors.AppError
}

func NewMessageService(repo repository.MessageRepositoryInterface, users UserResolver, friends FriendLister, c cache.Cache) MessageServiceInterface {
	return &MessageService{
		repo:    repo,
		users:   users,
		friends: friends,
		cache:   c,
	}
}

// SendMessage delivers a message between two users. Messaging is restricted
// to accepted friends.
func (s *MessageService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.From == "" || req.To == "" || req.Content == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "from, to and content are required", nil)
	}
	if req.From == req.To {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cannot message yourself", nil)
	}

	sender, appErr := s.users.ResolveUsername(ctx, req.From)
	if appErr != nil {
		return nil, appErr
	}
	recipient, appErr := s.users.ResolveUsername(ctx, req.To)
	if appErr != nil {
		return nil, appErr
	}

	areFriends, appErr := s.areFriends(ctx, sender.ID, recipient.Username)
	if appErr != nil {
		return nil, appErr
	}
	if !areFriends {
		return nil, errors.NewAppError(errors.ErrForbidden, "messages can only be sent to friends", nil)
	}

	msg := &entity.Message{
		SenderID:          sender.ID,
		RecipientID:       recipient.ID,
		Content:           req.Content,
		SenderUsername:    sender.Username,
		RecipientUsername: recipient.Username,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "send message failed", err)
	}

	return mapper.ToMessageResponse(msg), nil
}

// areFriends checks the cached friends set first and falls back to the
// friendship table on a miss.
func (s *MessageService) areFriends(ctx context.Context, senderID uuid.UUID, recipientUsername string) (bool, *errors.AppError) {
	friends, ok := s.cache.GetFriends(ctx, senderID)
	if !ok {
		var err error
		friends, err = s.friends.GetFriendUsernames(ctx, senderID)
		if err != nil {
			return false, errors.NewAppError(errors.ErrGetFailed, "get friends failed", err)
		}
		_ = s.cache.SetFriends(ctx, senderID, friends)
	}

	for _, f := range friends {
		if f == recipientUsername {
			return true, nil
		}
	}
	return false, nil
}

func (s *MessageService) GetConversation(ctx context.Context, username string, withUsername string) ([]dto.MessageResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return nil, appErr
	}
	other, appErr := s.users.ResolveUsername(ctx, withUsername)
	if appErr != nil {
		return nil, appErr
	}

	messages, err := s.repo.GetConversation(ctx, user.ID, other.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get conversation failed", err)
	}

	return mapper.ToMessageResponses(messages), nil
}

func (s *MessageService) UnreadCount(ctx context.Context, username string) (*dto.UnreadCountResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		return nil, appErr
	}

	count, err := s.repo.CountUnread(ctx, user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "count unread messages failed", err)
	}

	return &dto.UnreadCountResponse{Username: user.Username, Unread: count}, nil
}

// MarkRead flags everything the peer has sent the user as read.
func (s *MessageService) MarkRead(ctx context.Context, req *dto.MarkReadRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.User == "" || req.With == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "user and with are required", nil)
	}

	user, appErr := s.users.ResolveUsername(ctx, req.User)
	if appErr != nil {
		return appErr
	}
	other, appErr := s.users.ResolveUsername(ctx, req.With)
	if appErr != nil {
		return appErr
	}

	if _, err := s.repo.MarkRead(ctx, user.ID, other.ID); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "mark messages read failed", err)
	}

	return nil
}
