package service

import (
	"context"
	"testing"

	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/modules/friend/dto"

	"github.com/google/uuid"
)

func newTestFriendService(usernames ...string) (FriendServiceInterface, *mockFriendRepo, *mockUserService, *mockCache, *mockNotifier) {
	repo := newMockFriendRepo()
	users := newMockUserService(usernames...)
	c := newMockCache()
	notifier := &mockNotifier{}
	svc := NewFriendService(repo, users, c, notifier)
	return svc, repo, users, c, notifier
}

func TestSendRequest_CreatesPendingAndNotifies(t *testing.T) {
	svc, repo, users, _, notifier := newTestFriendService("alice", "bob")

	result, appErr := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "alice", To: "bob"})
	if appErr != nil {
		t.Fatalf("SendRequest failed: %v", appErr)
	}
	if result.Status != constants.FriendRequestPending {
		t.Errorf("expected pending status, got %s", result.Status)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected one stored request, got %d", len(repo.requests))
	}
	if len(notifier.payloads) != 1 || notifier.payloads[0].UserID != users.users["bob"].ID {
		t.Error("addressee should receive a friend_request notification")
	}
}

func TestSendRequest_Validation(t *testing.T) {
	svc, _, _, _, _ := newTestFriendService("alice", "bob")

	tests := []struct {
		name     string
		from, to string
		wantCode errors.ErrorCode
	}{
		{"to self", "alice", "alice", errors.ErrInvalidInput},
		{"missing from", "", "bob", errors.ErrInvalidInput},
		{"unknown addressee", "alice", "ghost", errors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: tt.from, To: tt.to})
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, appErr)
			}
		})
	}
}

func TestSendRequest_DuplicateEdgeRejected(t *testing.T) {
	svc, _, _, _, _ := newTestFriendService("alice", "bob")

	if _, appErr := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "alice", To: "bob"}); appErr != nil {
		t.Fatalf("first request failed: %v", appErr)
	}

	// Same pair, either direction.
	_, appErr := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "bob", To: "alice"})
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Errorf("expected ErrAlreadyExists, got %v", appErr)
	}
}

func TestAccept_OnlyAddresseeMayRespond(t *testing.T) {
	svc, repo, users, c, notifier := newTestFriendService("alice", "bob")

	sent, appErr := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "alice", To: "bob"})
	if appErr != nil {
		t.Fatalf("SendRequest failed: %v", appErr)
	}

	if _, appErr := svc.Accept(context.Background(), sent.ID, "alice"); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("requester accepting their own request should be forbidden, got %v", appErr)
	}

	// Prime the cache so we can observe the invalidation.
	aliceID := users.users["alice"].ID
	bobID := users.users["bob"].ID
	_ = c.SetFriends(context.Background(), aliceID, []string{})
	_ = c.SetFriends(context.Background(), bobID, []string{})

	result, appErr := svc.Accept(context.Background(), sent.ID, "bob")
	if appErr != nil {
		t.Fatalf("Accept failed: %v", appErr)
	}
	if result.Status != constants.FriendRequestAccepted {
		t.Errorf("expected accepted status, got %s", result.Status)
	}
	if repo.requests[sent.ID].Status != constants.FriendRequestAccepted {
		t.Error("status should be persisted")
	}
	if _, ok := c.friends[aliceID]; ok {
		t.Error("requester's cached friends should be invalidated")
	}
	if _, ok := c.friends[bobID]; ok {
		t.Error("addressee's cached friends should be invalidated")
	}
	// One notification for the request, one for the acceptance.
	if len(notifier.payloads) != 2 || notifier.payloads[1].UserID != aliceID {
		t.Error("requester should be notified of the acceptance")
	}
}

func TestDecline_DoesNotNotify(t *testing.T) {
	svc, _, _, _, notifier := newTestFriendService("alice", "bob")

	sent, appErr := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "alice", To: "bob"})
	if appErr != nil {
		t.Fatalf("SendRequest failed: %v", appErr)
	}

	result, appErr := svc.Decline(context.Background(), sent.ID, "bob")
	if appErr != nil {
		t.Fatalf("Decline failed: %v", appErr)
	}
	if result.Status != constants.FriendRequestDeclined {
		t.Errorf("expected declined status, got %s", result.Status)
	}
	if len(notifier.payloads) != 1 {
		t.Errorf("decline must not notify the requester, got %d notifications", len(notifier.payloads))
	}

	// A declined request cannot be responded to again.
	if _, appErr := svc.Accept(context.Background(), sent.ID, "bob"); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Errorf("responding twice should fail, got %v", appErr)
	}
}

func TestAccept_UnknownRequest(t *testing.T) {
	svc, _, _, _, _ := newTestFriendService("alice")

	_, appErr := svc.Accept(context.Background(), uuid.New(), "alice")
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", appErr)
	}
}

func TestListFriends_AfterAccept(t *testing.T) {
	svc, _, _, _, _ := newTestFriendService("alice", "bob")

	sent, _ := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "alice", To: "bob"})
	if _, appErr := svc.Accept(context.Background(), sent.ID, "bob"); appErr != nil {
		t.Fatalf("Accept failed: %v", appErr)
	}

	result, appErr := svc.ListFriends(context.Background(), "alice")
	if appErr != nil {
		t.Fatalf("ListFriends failed: %v", appErr)
	}
	if len(result.Friends) != 1 || result.Friends[0] != "bob" {
		t.Errorf("expected friends [bob], got %v", result.Friends)
	}
}

func TestFriendsOfID_PrefersCache(t *testing.T) {
	svc, _, users, c, _ := newTestFriendService("alice")

	aliceID := users.users["alice"].ID
	_ = c.SetFriends(context.Background(), aliceID, []string{"cached-friend"})

	friends, appErr := svc.FriendsOfID(context.Background(), aliceID)
	if appErr != nil {
		t.Fatalf("FriendsOfID failed: %v", appErr)
	}
	if len(friends) != 1 || friends[0] != "cached-friend" {
		t.Errorf("expected the cached value, got %v", friends)
	}
}

func TestRemoveFriend(t *testing.T) {
	svc, _, _, _, _ := newTestFriendService("alice", "bob")

	sent, _ := svc.SendRequest(context.Background(), &dto.SendFriendRequestRequest{From: "alice", To: "bob"})
	if _, appErr := svc.Accept(context.Background(), sent.ID, "bob"); appErr != nil {
		t.Fatalf("Accept failed: %v", appErr)
	}

	if appErr := svc.RemoveFriend(context.Background(), "alice", "bob"); appErr != nil {
		t.Fatalf("RemoveFriend failed: %v", appErr)
	}
	if appErr := svc.RemoveFriend(context.Background(), "alice", "bob"); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("removing again should report not found, got %v", appErr)
	}
}
