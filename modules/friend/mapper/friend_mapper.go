package mapper

import (
	"playzio-api/modules/friend/dto"
	"playzio-api/modules/friend/entity"
)

func ToFriendRequestResponse(req *entity.FriendRequest) *dto.FriendRequestResponse {
	return &dto.FriendRequestResponse{
		ID:        req.ID,
		From:      req.RequesterUsername,
		To:        req.AddresseeUsername,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	}
}

func ToFriendRequestResponses(requests []entity.FriendRequest) []dto.FriendRequestResponse {
	result := make([]dto.FriendRequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *ToFriendRequestResponse(&requests[i]))
	}
	return result
}
