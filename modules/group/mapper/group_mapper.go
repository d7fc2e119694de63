package mapper

import (
	"playzio-api/modules/group/dto"
	"playzio-api/modules/group/entity"
)

func ToGroupResponse(group *entity.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatorUsername,
		CreatedAt:   group.CreatedAt,
	}
}

func ToGroupResponses(groups []entity.Group) []dto.GroupResponse {
	result := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *ToGroupResponse(&groups[i]))
	}
	return result
}

func ToGroupMembersResponse(group *entity.Group, members []entity.GroupMember) *dto.GroupMembersResponse {
	usernames := make([]string, 0, len(members))
	for _, m := range members {
		usernames = append(usernames, m.Username)
	}
	return &dto.GroupMembersResponse{
		GroupID: group.ID,
		Members: usernames,
	}
}
