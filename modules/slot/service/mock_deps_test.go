package service

import (
	"context"

	"playzio-api/core/errors"
	"playzio-api/core/queue"
	"playzio-api/modules/slot/entity"
	userentity "playzio-api/modules/user/entity"

	"github.com/google/uuid"
)

// ===================== Mock slot repository =====================

type mockSlotRepo struct {
	slots map[string]*entity.Slot
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[string]*entity.Slot)}
}

func (m *mockSlotRepo) List(_ context.Context, activityType string) ([]entity.Slot, error) {
	var result []entity.Slot
	for _, s := range m.slots {
		if activityType != "" && !slotHasActivity(s, activityType) {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func slotHasActivity(s *entity.Slot, activityType string) bool {
	for _, a := range s.Activities {
		if a == activityType {
			return true
		}
	}
	return s.CustomActivity != nil && *s.CustomActivity == activityType
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*entity.Slot, error) {
	if s, ok := m.slots[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *mockSlotRepo) Create(_ context.Context, slot *entity.Slot) error {
	copied := *slot
	m.slots[slot.ID] = &copied
	return nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.slots[id]; !ok {
		return false, nil
	}
	delete(m.slots, id)
	return true, nil
}

func (m *mockSlotRepo) AddParticipant(_ context.Context, slotID string, userID uuid.UUID) (bool, error) {
	s := m.slots[slotID]
	username := mockUsernames[userID]
	for _, p := range s.Participants {
		if p == username {
			return false, nil
		}
	}
	s.Participants = append(s.Participants, username)
	return true, nil
}

func (m *mockSlotRepo) RemoveParticipant(_ context.Context, slotID string, userID uuid.UUID) (bool, error) {
	s := m.slots[slotID]
	username := mockUsernames[userID]
	for i, p := range s.Participants {
		if p == username {
			s.Participants = append(s.Participants[:i], s.Participants[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSlotRepo) CountParticipants(_ context.Context, slotID string) (int, error) {
	return len(m.slots[slotID].Participants), nil
}

func (m *mockSlotRepo) DeleteExpired(_ context.Context, today string, nowTime string) (int64, error) {
	var purged int64
	for id, s := range m.slots {
		if s.Date < today || (s.Date == today && s.EndTime < nowTime) {
			delete(m.slots, id)
			purged++
		}
	}
	return purged, nil
}

// ===================== Mock user resolver =====================

// mockUsernames maps ids back to usernames for the participant tables.
var mockUsernames = map[uuid.UUID]string{}

type mockUserResolver struct {
	users map[string]*userentity.User
}

func newMockUserResolver(usernames ...string) *mockUserResolver {
	m := &mockUserResolver{users: make(map[string]*userentity.User)}
	for _, name := range usernames {
		u := &userentity.User{ID: uuid.New(), Username: name}
		m.users[name] = u
		mockUsernames[u.ID] = name
	}
	return m
}

func (m *mockUserResolver) ResolveUsername(_ context.Context, username string) (*userentity.User, *errors.AppError) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
}

// ===================== Mock relationship sources =====================

type mockFriendSource struct {
	friends map[uuid.UUID][]string
}

func (m *mockFriendSource) FriendsOfID(_ context.Context, userID uuid.UUID) ([]string, *errors.AppError) {
	return m.friends[userID], nil
}

type mockGroupSource struct {
	groups map[uuid.UUID][]uuid.UUID
}

func (m *mockGroupSource) GroupIDsOfID(_ context.Context, userID uuid.UUID) ([]uuid.UUID, *errors.AppError) {
	return m.groups[userID], nil
}

// ===================== Mock notifier =====================

type mockNotifier struct {
	payloads []queue.NotificationPayload
}

func (m *mockNotifier) EnqueueNotification(_ context.Context, payload queue.NotificationPayload) {
	m.payloads = append(m.payloads, payload)
}
