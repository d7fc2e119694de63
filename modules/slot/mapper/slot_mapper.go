package mapper

import (
	"playzio-api/modules/slot/dto"
	"playzio-api/modules/slot/entity"
)

// ToSlotResponse converts a Slot entity to a SlotResponse DTO
func ToSlotResponse(slot *entity.Slot) *dto.SlotResponse {
	return &dto.SlotResponse{
		ID:               slot.ID,
		Date:             slot.Date,
		StartTime:        slot.StartTime,
		EndTime:          slot.EndTime,
		Activities:       []string(slot.Activities),
		CustomActivity:   slot.CustomActivity,
		Description:      slot.Description,
		Location:         slot.Location,
		MaxParticipants:  slot.MaxParticipants,
		CreatedBy:        slot.CreatedBy,
		Participants:     slot.Participants,
		VisibleToAll:     slot.VisibleToAll,
		VisibleToFriends: slot.VisibleToFriends,
		VisibleToGroups:  slot.GroupIDs,
		NotifyByEmail:    slot.NotifyByEmail,
		CreatedAt:        slot.CreatedAt,
	}
}

// ToSlotResponses converts a list of Slot entities to SlotResponse DTOs
func ToSlotResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		responses = append(responses, *ToSlotResponse(&slots[i]))
	}
	return responses
}
