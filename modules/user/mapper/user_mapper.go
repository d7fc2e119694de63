package mapper

import (
	"playzio-api/modules/user/dto"
	"playzio-api/modules/user/entity"
)

func ToUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Role:           user.Role,
		FoundingMember: user.FoundingMember,
		CreatedAt:      user.CreatedAt,
	}
}

func ToUserResponses(users []entity.User) []dto.UserResponse {
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *ToUserResponse(&users[i]))
	}
	return result
}
