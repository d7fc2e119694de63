package controller

import (
	"playzio-api/core/controller"
	"playzio-api/core/errors"
	"playzio-api/modules/group/dto"
	"playzio-api/modules/group/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GroupController handles group HTTP requests
type GroupController struct {
	controller.BaseController
	GroupService service.GroupServiceInterface
}

func NewGroupController(svc service.GroupServiceInterface) *GroupController {
	return &GroupController{
		BaseController: controller.NewBaseController(),
		GroupService:   svc,
	}
}

// GetGroups handles GET /api/groups?user=
func (c *GroupController) GetGroups(ctx echo.Context) error {
	username := ctx.QueryParam("user")
	if username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user query parameter is required")
	}

	result, appErr := c.GroupService.GetGroupsByUser(ctx.Request().Context(), username)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateGroup handles POST /api/groups
func (c *GroupController) CreateGroup(ctx echo.Context) error {
	var req dto.CreateGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.GroupService.CreateGroup(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Group created successfully")
}

// GetMembers handles GET /api/groups/:id/members
func (c *GroupController) GetMembers(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	result, appErr := c.GroupService.GetMembers(ctx.Request().Context(), groupID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// AddMember handles POST /api/groups/:id/members
func (c *GroupController) AddMember(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req dto.AddMemberRequest
	if err := ctx.Bind(&req); err != nil || req.User == "" || req.Actor == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user and actor are required")
	}

	if appErr := c.GroupService.AddMember(ctx.Request().Context(), groupID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member added successfully")
}

// RemoveMember handles DELETE /api/groups/:id/members/:username?actor=
func (c *GroupController) RemoveMember(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	username := ctx.Param("username")
	actor := ctx.QueryParam("actor")
	if username == "" || actor == "" {
		return c.BadRequest(errors.ErrInvalidInput, "username and actor are required")
	}

	if appErr := c.GroupService.RemoveMember(ctx.Request().Context(), groupID, username, actor); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member removed successfully")
}

type deleteGroupRequest struct {
	Actor    string `json:"actor"`
	UserRole string `json:"userRole"`
}

// DeleteGroup handles DELETE /api/groups/:id
func (c *GroupController) DeleteGroup(ctx echo.Context) error {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid group ID")
	}

	var req deleteGroupRequest
	if err := ctx.Bind(&req); err != nil || req.Actor == "" {
		return c.BadRequest(errors.ErrInvalidInput, "actor is required")
	}

	if appErr := c.GroupService.DeleteGroup(ctx.Request().Context(), groupID, req.Actor, req.UserRole); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Group deleted successfully")
}
