package service

import (
	"testing"
	"time"

	"playzio-api/modules/slot/entity"

	"github.com/google/uuid"
)

var (
	testNow   = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC) // 2025-06-15 14:00
	groupA    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	groupB    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	groupC    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	tomorrow  = "2025-06-16"
	yesterday = "2025-06-14"
)

func makeSlot(createdBy string, mutate func(*entity.Slot)) entity.Slot {
	s := entity.Slot{
		ID:           "slot-" + createdBy,
		Date:         tomorrow,
		StartTime:    "10:00",
		EndTime:      "12:00",
		CreatedBy:    createdBy,
		VisibleToAll: true,
		Participants: []string{},
		GroupIDs:     []uuid.UUID{},
	}
	if mutate != nil {
		mutate(&s)
	}
	return s
}

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		endTime string
		want    bool
	}{
		{"past date", yesterday, "23:59", true},
		{"future date", tomorrow, "00:01", false},
		{"today, end time passed", "2025-06-15", "13:00", true},
		{"today, end time ahead", "2025-06-15", "15:00", false},
		{"today, end time equals now", "2025-06-15", "14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := makeSlot("alice", func(s *entity.Slot) {
				s.Date = tt.date
				s.EndTime = tt.endTime
			})
			if got := IsExpired(&slot, testNow); got != tt.want {
				t.Errorf("IsExpired(date=%s end=%s) = %v, want %v", tt.date, tt.endTime, got, tt.want)
			}
		})
	}
}

func TestOwnerSeesOwnSlotRegardlessOfFlags(t *testing.T) {
	slot := makeSlot("alice", func(s *entity.Slot) {
		s.VisibleToAll = false
		s.VisibleToFriends = false
	})
	alice := NewViewer("alice", nil, nil)

	if !VisibleInView(&slot, alice, ViewMine) {
		t.Error("owner should see their own slot in the mine view")
	}
	if !VisibleInView(&slot, alice, ViewAll) {
		t.Error("owner should see their own slot in the default view")
	}
}

func TestPublicViewExcludesOwnSlots(t *testing.T) {
	own := makeSlot("alice", nil)
	other := makeSlot("bob", nil)
	alice := NewViewer("alice", nil, nil)

	if VisibleInView(&own, alice, ViewPublic) {
		t.Error("public view should not include the viewer's own slots")
	}
	if !VisibleInView(&other, alice, ViewPublic) {
		t.Error("public view should include public slots from other users")
	}
}

func TestFriendsViewRequiresAllThreeConditions(t *testing.T) {
	tests := []struct {
		name             string
		createdBy        string
		visibleToFriends bool
		friends          []string
		want             bool
	}{
		{"all conditions hold", "bob", true, []string{"bob"}, true},
		{"flag off", "bob", false, []string{"bob"}, false},
		{"not a friend", "bob", true, []string{"carol"}, false},
		{"own slot", "alice", true, []string{"bob"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := makeSlot(tt.createdBy, func(s *entity.Slot) {
				s.VisibleToAll = false
				s.VisibleToFriends = tt.visibleToFriends
			})
			viewer := NewViewer("alice", tt.friends, nil)
			if got := VisibleInView(&slot, viewer, ViewFriends); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupsViewRequiresIntersection(t *testing.T) {
	tests := []struct {
		name       string
		slotGroups []uuid.UUID
		myGroups   []uuid.UUID
		want       bool
	}{
		{"shared group", []uuid.UUID{groupA, groupB}, []uuid.UUID{groupB, groupC}, true},
		{"disjoint groups", []uuid.UUID{groupA}, []uuid.UUID{groupC}, false},
		{"slot has no groups", nil, []uuid.UUID{groupA}, false},
		{"viewer has no groups", []uuid.UUID{groupA}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := makeSlot("bob", func(s *entity.Slot) {
				s.VisibleToAll = false
				s.GroupIDs = tt.slotGroups
			})
			viewer := NewViewer("alice", nil, tt.myGroups)
			if got := VisibleInView(&slot, viewer, ViewGroups); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// A friends-only slot from Bob: Alice the friend sees it, Carol the stranger
// does not, and Bob himself always does.
func TestFriendsOnlySlotAcrossViewers(t *testing.T) {
	slot := makeSlot("bob", func(s *entity.Slot) {
		s.VisibleToAll = false
		s.VisibleToFriends = true
	})

	alice := NewViewer("alice", []string{"bob"}, nil)
	carol := NewViewer("carol", nil, nil)
	bob := NewViewer("bob", nil, nil)

	if !VisibleInView(&slot, alice, ViewAll) {
		t.Error("friend should see the friends-only slot")
	}
	if VisibleInView(&slot, carol, ViewAll) {
		t.Error("stranger should not see the friends-only slot")
	}
	if !VisibleInView(&slot, bob, ViewAll) {
		t.Error("owner should see their own friends-only slot")
	}
}

func TestDefaultViewUnionsPredicates(t *testing.T) {
	groupSlot := makeSlot("bob", func(s *entity.Slot) {
		s.VisibleToAll = false
		s.GroupIDs = []uuid.UUID{groupA}
	})

	member := NewViewer("alice", nil, []uuid.UUID{groupA})
	outsider := NewViewer("carol", nil, []uuid.UUID{groupB})

	if !VisibleInView(&groupSlot, member, ViewAll) {
		t.Error("group member should see the group slot in the default view")
	}
	if VisibleInView(&groupSlot, outsider, ViewAll) {
		t.Error("non-member should not see the group slot in the default view")
	}
}

func TestMalformedSlotIsExcluded(t *testing.T) {
	slot := makeSlot("", nil)
	alice := NewViewer("alice", nil, nil)

	for _, view := range []View{ViewAll, ViewMine, ViewPublic, ViewFriends, ViewGroups} {
		if VisibleInView(&slot, alice, view) {
			t.Errorf("slot without a creator should be excluded from view %q", view)
		}
	}
	if VisibleInView(&slot, nil, ViewAll) {
		t.Error("slot without a creator should be excluded for anonymous viewers")
	}
}

func TestAnonymousViewerSeesOnlyPublicSlots(t *testing.T) {
	public := makeSlot("alice", nil)
	hidden := makeSlot("alice", func(s *entity.Slot) {
		s.VisibleToAll = false
		s.VisibleToFriends = true
	})

	if !VisibleInView(&public, nil, ViewAll) {
		t.Error("anonymous viewer should see public slots")
	}
	if VisibleInView(&hidden, nil, ViewAll) {
		t.Error("anonymous viewer should not see restricted slots")
	}
	if VisibleInView(&public, nil, ViewMine) {
		t.Error("anonymous viewer has no mine view")
	}
}

func TestFilterSlotsDropsExpiredEntries(t *testing.T) {
	slots := []entity.Slot{
		makeSlot("alice", func(s *entity.Slot) { s.ID = "fresh" }),
		makeSlot("alice", func(s *entity.Slot) {
			s.ID = "stale"
			s.Date = yesterday
		}),
		makeSlot("alice", func(s *entity.Slot) {
			s.ID = "ended-today"
			s.Date = "2025-06-15"
			s.EndTime = "13:30"
		}),
	}

	got := FilterSlots(slots, NewViewer("bob", nil, nil), ViewAll, testNow)
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("expected only the fresh slot, got %d slots", len(got))
	}
}

// A slot carrying several flags can appear in more than one view.
func TestViewsAreIndependent(t *testing.T) {
	slot := makeSlot("bob", func(s *entity.Slot) {
		s.VisibleToFriends = true
		s.GroupIDs = []uuid.UUID{groupA}
	})
	alice := NewViewer("alice", []string{"bob"}, []uuid.UUID{groupA})

	for _, view := range []View{ViewPublic, ViewFriends, ViewGroups, ViewAll} {
		if !VisibleInView(&slot, alice, view) {
			t.Errorf("slot should be visible in view %q", view)
		}
	}
	if VisibleInView(&slot, alice, ViewMine) {
		t.Error("slot should not appear in another user's mine view")
	}
}
