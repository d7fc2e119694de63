package service

import (
	"context"
	"testing"

	"playzio-api/core/config"
	"playzio-api/core/errors"
	"playzio-api/core/utils"
	"playzio-api/modules/user/dto"
	"playzio-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ===================== Mock user repository =====================

type mockUserRepo struct {
	users map[string]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := m.users[user.Username]; ok {
		return nil, &pq.Error{Code: "23505"}
	}
	created := *user
	created.ID = uuid.New()
	m.users[user.Username] = &created
	return &created, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *mockUserRepo) Search(_ context.Context, _ string) ([]entity.User, error) {
	var result []entity.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Delete(_ context.Context, username string) (bool, error) {
	if _, ok := m.users[username]; !ok {
		return false, nil
	}
	delete(m.users, username)
	return true, nil
}

// ===================== Tests =====================

func newTestUserService() (UserServiceInterface, *mockUserRepo) {
	config.SetForTest(&config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: 60,
		},
	})
	repo := newMockUserRepo()
	return NewUserService(repo), repo
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, repo := newTestUserService()

	result, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "hunter2",
	})
	if appErr != nil {
		t.Fatalf("Register failed: %v", appErr)
	}
	if result.Username != "alice" {
		t.Errorf("expected username alice, got %s", result.Username)
	}

	stored := repo.users["alice"]
	if stored.PasswordHash == "hunter2" {
		t.Error("password must not be stored in plain text")
	}
	if !utils.CheckPassword(stored.PasswordHash, "hunter2") {
		t.Error("stored hash should verify against the original password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestUserService()

	req := &dto.RegisterRequest{Username: "alice", Password: "pw"}
	if _, appErr := svc.Register(context.Background(), req); appErr != nil {
		t.Fatalf("first Register failed: %v", appErr)
	}
	_, appErr := svc.Register(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Errorf("expected ErrAlreadyExists, got %v", appErr)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestUserService()

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput for missing password, got %v", appErr)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService()

	if _, appErr := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "hunter2"}); appErr != nil {
		t.Fatalf("Register failed: %v", appErr)
	}

	result, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "hunter2"})
	if appErr != nil {
		t.Fatalf("Login failed: %v", appErr)
	}
	if result.AccessToken == "" {
		t.Fatal("expected an access token")
	}

	claims, err := utils.ValidateAndParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("expected token for alice, got %s", claims.Username)
	}

	// Wrong password and unknown user both come back as the same error.
	if _, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"}); appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized for wrong password, got %v", appErr)
	}
	if _, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "pw"}); appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized for unknown user, got %v", appErr)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestUserService()

	if _, appErr := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "pw"}); appErr != nil {
		t.Fatalf("Register failed: %v", appErr)
	}

	if appErr := svc.Delete(context.Background(), "alice"); appErr != nil {
		t.Fatalf("Delete failed: %v", appErr)
	}
	if appErr := svc.Delete(context.Background(), "alice"); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("deleting again should report not found, got %v", appErr)
	}
}
