package service

import (
	"context"
	"fmt"
	"time"

	"playzio-api/core/constants"
	"playzio-api/core/errors"
	"playzio-api/core/queue"
	"playzio-api/core/utils"
	"playzio-api/modules/slot/dto"
	"playzio-api/modules/slot/entity"
	"playzio-api/modules/slot/mapper"
	"playzio-api/modules/slot/repository"
	userentity "playzio-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserResolver translates the API's username surface into stable ids.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (*userentity.User, *errors.AppError)
}

// FriendSource supplies the viewer's friend usernames.
type FriendSource interface {
	FriendsOfID(ctx context.Context, userID uuid.UUID) ([]string, *errors.AppError)
}

// GroupSource supplies the viewer's group memberships.
type GroupSource interface {
	GroupIDsOfID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, *errors.AppError)
}

// Notifier enqueues in-app notification deliveries.
type Notifier interface {
	EnqueueNotification(ctx context.Context, payload queue.NotificationPayload)
}

// SlotService handles availability slot business logic
type SlotService struct {
	repo     repository.SlotRepositoryInterface
	users    UserResolver
	friends  FriendSource
	groups   GroupSource
	notifier Notifier
	now      func() time.Time
}

// SlotServiceInterface defines the service contract
type SlotServiceInterface interface {
	ListSlots(ctx context.Context, activityType string, username string, view View) ([]dto.SlotResponse, *errors.AppError)
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, *errors.AppError)
	JoinSlot(ctx context.Context, slotID string, req *dto.JoinSlotRequest) (*dto.SlotResponse, *errors.AppError)
	LeaveSlot(ctx context.Context, slotID string, participant string) (*dto.SlotResponse, *errors.AppError)
	DeleteSlot(ctx context.Context, slotID string, req *dto.DeleteSlotRequest) *errors.AppError

	// PurgeExpired removes rows whose window has passed; listings do not
	// depend on it running.
	PurgeExpired(ctx context.Context) (int64, error)
}

func NewSlotService(repo repository.SlotRepositoryInterface, users UserResolver, friends FriendSource, groups GroupSource, notifier Notifier) SlotServiceInterface {
	return &SlotService{
		repo:     repo,
		users:    users,
		friends:  friends,
		groups:   groups,
		notifier: notifier,
		now:      time.Now,
	}
}

// ListSlots returns the slots the named user may see under the requested
// view, already stripped of expired entries. An empty or unknown username is
// served as an anonymous viewer and only sees public slots.
func (s *SlotService) ListSlots(ctx context.Context, activityType string, username string, view View) ([]dto.SlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	viewer, appErr := s.resolveViewer(ctx, username)
	if appErr != nil {
		return nil, appErr
	}

	slots, err := s.repo.List(ctx, activityType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list slots failed", err)
	}

	visible := FilterSlots(slots, viewer, view, s.now())
	return mapper.ToSlotResponses(visible), nil
}

func (s *SlotService) resolveViewer(ctx context.Context, username string) (*Viewer, *errors.AppError) {
	if username == "" {
		return nil, nil
	}

	user, appErr := s.users.ResolveUsername(ctx, username)
	if appErr != nil {
		if appErr.Code == errors.ErrNotFound {
			return nil, nil
		}
		return nil, appErr
	}

	friends, appErr := s.friends.FriendsOfID(ctx, user.ID)
	if appErr != nil {
		return nil, appErr
	}
	groupIDs, appErr := s.groups.GroupIDsOfID(ctx, user.ID)
	if appErr != nil {
		return nil, appErr
	}

	return NewViewer(user.Username, friends, groupIDs), nil
}

// CreateSlot validates and stores a new slot. An absent visibleToAll flag
// defaults to public.
func (s *SlotService) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Date == "" || req.StartTime == "" || req.EndTime == "" || req.CreatedBy == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date, startTime, endTime and createdBy are required", nil)
	}
	if _, err := time.Parse(constants.DateLayout, req.Date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be formatted as YYYY-MM-DD", err)
	}
	for _, t := range []string{req.StartTime, req.EndTime} {
		if _, err := time.Parse(constants.TimeLayout, t); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "times must be formatted as HH:MM", err)
		}
	}
	if req.EndTime <= req.StartTime {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "endTime must be after startTime", nil)
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "maxParticipants must be at least 1", nil)
	}

	creator, appErr := s.users.ResolveUsername(ctx, req.CreatedBy)
	if appErr != nil {
		return nil, appErr
	}

	visibleToAll := true
	if req.VisibleToAll != nil {
		visibleToAll = *req.VisibleToAll
	}

	slot := &entity.Slot{
		ID:               utils.GenerateID(),
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Activities:       pq.StringArray(req.Activities),
		MaxParticipants:  req.MaxParticipants,
		CreatedByID:      creator.ID,
		CreatedBy:        creator.Username,
		VisibleToAll:     visibleToAll,
		VisibleToFriends: req.VisibleToFriends,
		NotifyByEmail:    req.NotifyByEmail,
		Participants:     []string{},
		GroupIDs:         req.VisibleToGroups,
	}
	if slot.Activities == nil {
		slot.Activities = pq.StringArray{}
	}
	if slot.GroupIDs == nil {
		slot.GroupIDs = []uuid.UUID{}
	}
	if req.CustomActivity != "" {
		slot.CustomActivity = &req.CustomActivity
	}
	if req.Description != "" {
		slot.Description = &req.Description
	}
	if req.Location != "" {
		slot.Location = &req.Location
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create slot failed", err)
	}

	return mapper.ToSlotResponse(slot), nil
}

// JoinSlot adds a participant. Joining twice is a no-op rather than an
// error, so retried requests stay safe.
func (s *SlotService) JoinSlot(ctx context.Context, slotID string, req *dto.JoinSlotRequest) (*dto.SlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.Participant == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "participant is required", nil)
	}

	slot, appErr := s.getSlot(ctx, slotID)
	if appErr != nil {
		return nil, appErr
	}
	if IsExpired(slot, s.now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "slot has expired", nil)
	}

	participant, appErr := s.users.ResolveUsername(ctx, req.Participant)
	if appErr != nil {
		return nil, appErr
	}

	if slot.MaxParticipants != nil {
		count, err := s.repo.CountParticipants(ctx, slotID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "count participants failed", err)
		}
		if count >= *slot.MaxParticipants && !contains(slot.Participants, participant.Username) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "slot is full", nil)
		}
	}

	added, err := s.repo.AddParticipant(ctx, slotID, participant.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "join slot failed", err)
	}

	if added && participant.Username != slot.CreatedBy {
		s.notifier.EnqueueNotification(ctx, queue.NotificationPayload{
			UserID:  slot.CreatedByID,
			Title:   "New participant",
			Message: fmt.Sprintf("%s joined your slot on %s", participant.Username, slot.Date),
			Type:    "slot_join",
		})
	}

	return s.refreshSlot(ctx, slotID)
}

// LeaveSlot removes a participant from a slot.
func (s *SlotService) LeaveSlot(ctx context.Context, slotID string, participant string) (*dto.SlotResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if participant == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "participant is required", nil)
	}

	if _, appErr := s.getSlot(ctx, slotID); appErr != nil {
		return nil, appErr
	}

	user, appErr := s.users.ResolveUsername(ctx, participant)
	if appErr != nil {
		return nil, appErr
	}

	removed, err := s.repo.RemoveParticipant(ctx, slotID, user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "leave slot failed", err)
	}
	if !removed {
		return nil, errors.NewAppError(errors.ErrNotFound, "user is not a participant of this slot", nil)
	}

	return s.refreshSlot(ctx, slotID)
}

// DeleteSlot removes a slot. Only the creator or an admin may delete.
func (s *SlotService) DeleteSlot(ctx context.Context, slotID string, req *dto.DeleteSlotRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	slot, appErr := s.getSlot(ctx, slotID)
	if appErr != nil {
		return appErr
	}

	if slot.CreatedBy != req.CreatedBy && req.UserRole != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrForbidden, "only the creator or an admin can delete a slot", nil)
	}

	deleted, err := s.repo.Delete(ctx, slotID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete slot failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "slot not found", nil)
	}

	return nil
}

func (s *SlotService) PurgeExpired(ctx context.Context) (int64, error) {
	now := s.now()
	return s.repo.DeleteExpired(ctx, now.Format(constants.DateLayout), now.Format(constants.TimeLayout))
}

func (s *SlotService) getSlot(ctx context.Context, slotID string) (*entity.Slot, *errors.AppError) {
	slot, err := s.repo.GetByID(ctx, slotID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get slot failed", err)
	}
	if slot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "slot not found", nil)
	}
	return slot, nil
}

func (s *SlotService) refreshSlot(ctx context.Context, slotID string) (*dto.SlotResponse, *errors.AppError) {
	slot, appErr := s.getSlot(ctx, slotID)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToSlotResponse(slot), nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
