package service

import (
	"context"
	"testing"

	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/modules/group/dto"
	"playzio-api/modules/group/entity"
	userdto "playzio-api/modules/user/dto"
	userentity "playzio-api/modules/user/entity"

	"github.com/google/uuid"
)

// ===================== Mocks =====================

type mockGroupRepo struct {
	groups  map[uuid.UUID]*entity.Group
	members map[uuid.UUID]map[uuid.UUID]string
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{
		groups:  make(map[uuid.UUID]*entity.Group),
		members: make(map[uuid.UUID]map[uuid.UUID]string),
	}
}

func (m *mockGroupRepo) Create(_ context.Context, group *entity.Group) error {
	group.ID = uuid.New()
	m.groups[group.ID] = group
	m.members[group.ID] = map[uuid.UUID]string{group.CreatedBy: group.CreatorUsername}
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	if g, ok := m.groups[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, nil
}

func (m *mockGroupRepo) GetGroupsByUserID(_ context.Context, userID uuid.UUID) ([]entity.Group, error) {
	var result []entity.Group
	for id, members := range m.members {
		if _, ok := members[userID]; ok {
			result = append(result, *m.groups[id])
		}
	}
	return result, nil
}

func (m *mockGroupRepo) GetGroupIDsByUserID(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var result []uuid.UUID
	for id, members := range m.members {
		if _, ok := members[userID]; ok {
			result = append(result, id)
		}
	}
	return result, nil
}

func (m *mockGroupRepo) GetMembers(_ context.Context, groupID uuid.UUID) ([]entity.GroupMember, error) {
	var result []entity.GroupMember
	for userID, username := range m.members[groupID] {
		result = append(result, entity.GroupMember{GroupID: groupID, UserID: userID, Username: username})
	}
	return result, nil
}

func (m *mockGroupRepo) AddMember(_ context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	m.members[groupID][userID] = mockMemberNames[userID]
	return nil
}

func (m *mockGroupRepo) RemoveMember(_ context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error) {
	if _, ok := m.members[groupID][userID]; !ok {
		return false, nil
	}
	delete(m.members[groupID], userID)
	return true, nil
}

func (m *mockGroupRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.groups[id]; !ok {
		return false, nil
	}
	delete(m.groups, id)
	delete(m.members, id)
	return true, nil
}

var mockMemberNames = map[uuid.UUID]string{}

type mockUserService struct {
	users map[string]*userentity.User
}

func newMockUserService(usernames ...string) *mockUserService {
	m := &mockUserService{users: make(map[string]*userentity.User)}
	for _, name := range usernames {
		u := &userentity.User{ID: uuid.New(), Username: name}
		m.users[name] = u
		mockMemberNames[u.ID] = name
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

// ===================== Tests =====================

func newTestGroupService(usernames ...string) (GroupServiceInterface, *mockGroupRepo, *mockUserService, *mockCache) {
	repo := newMockGroupRepo()
	users := newMockUserService(usernames...)
	c := newMockCache()
	return NewGroupService(repo, users, c), repo, users, c
}

func createGroup(t *testing.T, svc GroupServiceInterface, name, creator string) *dto.GroupResponse {
	t.Helper()
	group, appErr := svc.CreateGroup(context.Background(), &dto.CreateGroupRequest{Name: name, CreatedBy: creator})
	if appErr != nil {
		t.Fatalf("CreateGroup failed: %v", appErr)
	}
	return group
}

func TestCreateGroup_CreatorBecomesMember(t *testing.T) {
	svc, repo, users, _ := newTestGroupService("alice")

	group := createGroup(t, svc, "climbers", "alice")
	if group.CreatedBy != "alice" {
		t.Errorf("expected creator alice, got %s", group.CreatedBy)
	}
	if _, ok := repo.members[group.ID][users.users["alice"].ID]; !ok {
		t.Error("creator should be a member of the new group")
	}
}

func TestAddMember_OnlyCreatorMayAdd(t *testing.T) {
	svc, repo, users, c := newTestGroupService("alice", "bob", "carol")
	group := createGroup(t, svc, "climbers", "alice")

	appErr := svc.AddMember(context.Background(), group.ID, &dto.AddMemberRequest{User: "carol", Actor: "bob"})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("non-creator adding a member should be forbidden, got %v", appErr)
	}

	bobID := users.users["bob"].ID
	_ = c.SetGroupIDs(context.Background(), bobID, []uuid.UUID{})

	if appErr := svc.AddMember(context.Background(), group.ID, &dto.AddMemberRequest{User: "bob", Actor: "alice"}); appErr != nil {
		t.Fatalf("creator adding a member failed: %v", appErr)
	}
	if _, ok := repo.members[group.ID][bobID]; !ok {
		t.Error("bob should now be a member")
	}
	if _, ok := c.groupIDs[bobID]; ok {
		t.Error("new member's cached group set should be invalidated")
	}
}

func TestRemoveMember_Rules(t *testing.T) {
	svc, _, _, _ := newTestGroupService("alice", "bob", "carol")
	group := createGroup(t, svc, "climbers", "alice")

	if appErr := svc.AddMember(context.Background(), group.ID, &dto.AddMemberRequest{User: "bob", Actor: "alice"}); appErr != nil {
		t.Fatalf("AddMember failed: %v", appErr)
	}

	// The creator cannot be removed, not even by themselves.
	if appErr := svc.RemoveMember(context.Background(), group.ID, "alice", "alice"); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("removing the creator should be forbidden, got %v", appErr)
	}

	// A third member cannot remove someone else.
	if appErr := svc.RemoveMember(context.Background(), group.ID, "bob", "carol"); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("stranger removing a member should be forbidden, got %v", appErr)
	}

	// A member can leave on their own.
	if appErr := svc.RemoveMember(context.Background(), group.ID, "bob", "bob"); appErr != nil {
		t.Fatalf("member leaving failed: %v", appErr)
	}

	// Removing a non-member reports not found.
	if appErr := svc.RemoveMember(context.Background(), group.ID, "bob", "alice"); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", appErr)
	}
}

func TestDeleteGroup_CreatorOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		actor    string
		role     string
		wantCode errors.ErrorCode
	}{
		{"creator may delete", "alice", constants.RoleUser, ""},
		{"admin may delete", "carol", constants.RoleAdmin, ""},
		{"member may not delete", "bob", constants.RoleUser, errors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestGroupService("alice", "bob", "carol")
			group := createGroup(t, svc, "climbers", "alice")

			appErr := svc.DeleteGroup(context.Background(), group.ID, tt.actor, tt.role)
			if tt.wantCode == "" {
				if appErr != nil {
					t.Fatalf("expected delete to succeed, got %v", appErr)
				}
				if _, ok := repo.groups[group.ID]; ok {
					t.Error("group should be gone")
				}
			} else if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, appErr)
			}
		})
	}
}

func TestGroupIDsOfID_PrefersCache(t *testing.T) {
	svc, _, users, c := newTestGroupService("alice")

	aliceID := users.users["alice"].ID
	cached := []uuid.UUID{uuid.New()}
	_ = c.SetGroupIDs(context.Background(), aliceID, cached)

	ids, appErr := svc.GroupIDsOfID(context.Background(), aliceID)
	if appErr != nil {
		t.Fatalf("GroupIDsOfID failed: %v", appErr)
	}
	if len(ids) != 1 || ids[0] != cached[0] {
		t.Errorf("expected the cached value, got %v", ids)
	}
}
