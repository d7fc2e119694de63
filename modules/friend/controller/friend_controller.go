package controller

import (
	"playzio-api/core/controller"
	"playzio-api/core/errors"
	"playzio-api/modules/friend/dto"
	"playzio-api/modules/friend/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FriendController handles friendship HTTP requests
type FriendController struct {
	controller.BaseController
	FriendService service.FriendServiceInterface
}

func NewFriendController(svc service.FriendServiceInterface) *FriendController {
	return &FriendController{
		BaseController: controller.NewBaseController(),
		FriendService:  svc,
	}
}

// ListFriends handles GET /api/friends?user=
func (c *FriendController) ListFriends(ctx echo.Context) error {
	username := ctx.QueryParam("user")
	if username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user query parameter is required")
	}

	result, appErr := c.FriendService.ListFriends(ctx.Request().Context(), username)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListPending handles GET /api/friends/requests?user=
func (c *FriendController) ListPending(ctx echo.Context) error {
	username := ctx.QueryParam("user")
	if username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user query parameter is required")
	}

	result, appErr := c.FriendService.ListPending(ctx.Request().Context(), username)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SendRequest handles POST /api/friends/requests
func (c *FriendController) SendRequest(ctx echo.Context) error {
	var req dto.SendFriendRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.FriendService.SendRequest(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Friend request sent")
}

type respondRequest struct {
	User string `json:"user"`
}

// Accept handles POST /api/friends/requests/:id/accept
func (c *FriendController) Accept(ctx echo.Context) error {
	id, user, httpErr := c.bindRespond(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.FriendService.Accept(ctx.Request().Context(), id, user)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Friend request accepted")
}

// Decline handles POST /api/friends/requests/:id/decline
func (c *FriendController) Decline(ctx echo.Context) error {
	id, user, httpErr := c.bindRespond(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.FriendService.Decline(ctx.Request().Context(), id, user)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Friend request declined")
}

func (c *FriendController) bindRespond(ctx echo.Context) (uuid.UUID, string, *echo.HTTPError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, "", c.BadRequest(errors.ErrInvalidInput, "Invalid friend request ID")
	}

	var req respondRequest
	if err := ctx.Bind(&req); err != nil || req.User == "" {
		return uuid.Nil, "", c.BadRequest(errors.ErrInvalidInput, "user is required")
	}

	return id, req.User, nil
}

// RemoveFriend handles DELETE /api/friends/:username?user=
func (c *FriendController) RemoveFriend(ctx echo.Context) error {
	username := ctx.QueryParam("user")
	friendUsername := ctx.Param("username")
	if username == "" || friendUsername == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user and friend username are required")
	}

	if appErr := c.FriendService.RemoveFriend(ctx.Request().Context(), username, friendUsername); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Friend removed")
}
