package mapper

import (
	"playzio-api/modules/message/dto"
	"playzio-api/modules/message/entity"
)

// ToMessageResponse converts a Message entity to a MessageResponse DTO
func ToMessageResponse(msg *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        msg.ID,
		From:      msg.SenderUsername,
		To:        msg.RecipientUsername,
		Content:   msg.Content,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt,
	}
}

// ToMessageResponses converts a list of Message entities to MessageResponse DTOs
func ToMessageResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *ToMessageResponse(&messages[i]))
	}
	return responses
}
