package service

import (
	"context"

	"playzio-api/core/errors"
	"playzio-api/core/queue"
	"playzio-api/modules/friend/entity"
	userdto "playzio-api/modules/user/dto"
	userentity "playzio-api/modules/user/entity"

	"github.com/google/uuid"
)

// ===================== Mock friend repository =====================

type mockFriendRepo struct {
	requests map[uuid.UUID]*entity.FriendRequest
}

func newMockFriendRepo() *mockFriendRepo {
	return &mockFriendRepo{requests: make(map[uuid.UUID]*entity.FriendRequest)}
}

func (m *mockFriendRepo) Create(_ context.Context, req *entity.FriendRequest) error {
	req.ID = uuid.New()
	m.requests[req.ID] = req
	return nil
}

func (m *mockFriendRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	if r, ok := m.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (m *mockFriendRepo) GetPendingForUser(_ context.Context, userID uuid.UUID) ([]entity.FriendRequest, error) {
	var result []entity.FriendRequest
	for _, r := range m.requests {
		if r.AddresseeID == userID && r.Status == "pending" {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockFriendRepo) EdgeExists(_ context.Context, a uuid.UUID, b uuid.UUID) (bool, error) {
	for _, r := range m.requests {
		if r.Status != "pending" && r.Status != "accepted" {
			continue
		}
		if (r.RequesterID == a && r.AddresseeID == b) || (r.RequesterID == b && r.AddresseeID == a) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFriendRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	m.requests[id].Status = status
	return nil
}

func (m *mockFriendRepo) GetFriendUsernames(_ context.Context, userID uuid.UUID) ([]string, error) {
	var result []string
	for _, r := range m.requests {
		if r.Status != "accepted" {
			continue
		}
		if r.RequesterID == userID {
			result = append(result, r.AddresseeUsername)
		} else if r.AddresseeID == userID {
			result = append(result, r.RequesterUsername)
		}
	}
	return result, nil
}

func (m *mockFriendRepo) RemoveFriendship(_ context.Context, a uuid.UUID, b uuid.UUID) (bool, error) {
	for id, r := range m.requests {
		if r.Status != "accepted" {
			continue
		}
		if (r.RequesterID == a && r.AddresseeID == b) || (r.RequesterID == b && r.AddresseeID == a) {
			delete(m.requests, id)
			return true, nil
		}
	}
	return false, nil
}

// ===================== Mock user service =====================

type mockUserService struct {
	users map[string]*userentity.User
}

func newMockUserService(usernames ...string) *mockUserService {
	m := &mockUserService{users: make(map[string]*userentity.User)}
	for _, name := range usernames {
		m.users[name] = &userentity.User{ID: uuid.New(), Username: name}
	}
	return m
}

func (m *mockUserService) ResolveUsername(_ context.Context, username string) (*userentity.User, *errors.AppError) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
}

func (m *mockUserService) Register(context.Context, *userdto.RegisterRequest) (*userdto.UserResponse, *errors.AppError) {
	return nil, nil
}

func (m *mockUserService) Login(context.Context, *userdto.LoginRequest) (*userdto.LoginResponse, *errors.AppError) {
	return nil, nil
}

func (m *mockUserService) GetByUsername(context.Context, string) (*userdto.UserResponse, *errors.AppError) {
	return nil, nil
}

func (m *mockUserService) Search(context.Context, string) ([]userdto.UserResponse, *errors.AppError) {
	return nil, nil
}

func (m *mockUserService) Delete(context.Context, string) *errors.AppError {
	return nil
}

// ===================== Mock cache =====================

type mockCache struct {
	friends  map[uuid.UUID][]string
	groupIDs map[uuid.UUID][]uuid.UUID
}

func newMockCache() *mockCache {
	return &mockCache{
		friends:  make(map[uuid.UUID][]string),
		groupIDs: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (m *mockCache) GetFriends(_ context.Context, userID uuid.UUID) ([]string, bool) {
	f, ok := m.friends[userID]
	return f, ok
}

func (m *mockCache) SetFriends(_ context.Context, userID uuid.UUID, friends []string) error {
	m.friends[userID] = friends
	return nil
}

func (m *mockCache) GetGroupIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, bool) {
	g, ok := m.groupIDs[userID]
	return g, ok
}

func (m *mockCache) SetGroupIDs(_ context.Context, userID uuid.UUID, groupIDs []uuid.UUID) error {
	m.groupIDs[userID] = groupIDs
	return nil
}

func (m *mockCache) InvalidateUser(_ context.Context, userID uuid.UUID) error {
	delete(m.friends, userID)
	delete(m.groupIDs, userID)
	return nil
}

func (m *mockCache) Close() error { return nil }

// ===================== Mock notifier =====================

type mockNotifier struct {
	payloads []queue.NotificationPayload
}

func (m *mockNotifier) EnqueueNotification(_ context.Context, payload queue.NotificationPayload) {
	m.payloads = append(m.payloads, payload)
}
