package service

import (
	"time"

	"playzio-api/core/constants"
	"playzio-api/modules/slot/entity"

	"github.com/google/uuid"
)

// View selects which projection of the slot list a caller wants.
type View string

const (
	// ViewAll is the generic listing: everything visible to the viewer,
	// including the lenient pre-visibility-flags rule.
	ViewAll     View = ""
	ViewMine    View = "mine"
	ViewPublic  View = "public"
	ViewFriends View = "friends"
	ViewGroups  View = "groups"
)

// Viewer is the requesting user's identity plus the two relationship inputs
// the predicates consume. A nil Viewer is an anonymous request.
type Viewer struct {
	Username string
	Friends  map[string]bool
	GroupIDs map[uuid.UUID]bool
}

// NewViewer builds a Viewer from the adjacency lookups.
func NewViewer(username string, friends []string, groupIDs []uuid.UUID) *Viewer {
	v := &Viewer{
		Username: username,
		Friends:  make(map[string]bool, len(friends)),
		GroupIDs: make(map[uuid.UUID]bool, len(groupIDs)),
	}
	for _, f := range friends {
		v.Friends[f] = true
	}
	for _, g := range groupIDs {
		v.GroupIDs[g] = true
	}
	return v
}

// IsExpired reports whether the slot's half-open interval has passed:
// its date is before today, or it is today and the end time is behind the
// wall clock. Repeated identical requests can therefore differ as time
// passes; that is the point of the check.
func IsExpired(slot *entity.Slot, now time.Time) bool {
	today := now.Format(constants.DateLayout)
	if slot.Date != today {
		return slot.Date < today
	}
	return slot.EndTime < now.Format(constants.TimeLayout)
}

// VisibleInView applies the per-view predicate. Each view is independent, so
// a slot with several flags set may legitimately appear in more than one
// view. A record without a creator is malformed and is excluded rather than
// reported as an error.
func VisibleInView(slot *entity.Slot, viewer *Viewer, view View) bool {
	if slot.CreatedBy == "" {
		return false
	}

	if viewer == nil {
		// Anonymous callers only ever see the public projection.
		return view != ViewMine && slot.VisibleToAll
	}

	switch view {
	case ViewMine:
		// Ownership alone grants visibility; the flags are not consulted.
		return slot.CreatedBy == viewer.Username
	case ViewPublic:
		// Own public slots are excluded here so they show up exactly once,
		// in the owner view.
		return slot.VisibleToAll && slot.CreatedBy != viewer.Username
	case ViewFriends:
		return slot.CreatedBy != viewer.Username &&
			slot.VisibleToFriends &&
			viewer.Friends[slot.CreatedBy]
	case ViewGroups:
		return slot.CreatedBy != viewer.Username && sharesGroup(slot, viewer)
	default:
		return visibleToUser(slot, viewer)
	}
}

// visibleToUser is the generic-listing rule: the owner always sees their own
// slots, everyone else gets the union of the strict predicates. Records
// predating the visibility flags carry no groups and a defaulted
// visible_to_all=true, so the old lenient rule collapses into the first
// flag check.
func visibleToUser(slot *entity.Slot, viewer *Viewer) bool {
	if slot.CreatedBy == viewer.Username {
		return true
	}
	if slot.VisibleToAll {
		return true
	}
	if slot.VisibleToFriends && viewer.Friends[slot.CreatedBy] {
		return true
	}
	return sharesGroup(slot, viewer)
}

func sharesGroup(slot *entity.Slot, viewer *Viewer) bool {
	for _, g := range slot.GroupIDs {
		if viewer.GroupIDs[g] {
			return true
		}
	}
	return false
}

// FilterSlots drops expired slots and applies the view predicate.
func FilterSlots(slots []entity.Slot, viewer *Viewer, view View, now time.Time) []entity.Slot {
	result := make([]entity.Slot, 0, len(slots))
	for i := range slots {
		if IsExpired(&slots[i], now) {
			continue
		}
		if VisibleInView(&slots[i], viewer, view) {
			result = append(result, slots[i])
		}
	}
	return result
}
