package controller

import (
	"playzio-api/core/constants"
	"playzio-api/core/controller"
	"playzio-api/core/errors"
	"playzio-api/core/params"
	"playzio-api/core/utils"
	"playzio-api/modules/notification/dto"
	"playzio-api/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationController handles in-app notification HTTP requests
type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

func NewNotificationController(svc service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

// GetMyNotifications handles GET /api/notifications
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	userID, httpErr := c.userIDFromContext(ctx)
	if httpErr != nil {
		return httpErr
	}

	queryParams := params.FromContext(ctx)
	result, appErr := c.NotificationService.GetMyNotifications(ctx.Request().Context(), userID, queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CountUnread handles GET /api/notifications/unread-count
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	userID, httpErr := c.userIDFromContext(ctx)
	if httpErr != nil {
		return httpErr
	}

	count, appErr := c.NotificationService.CountUnread(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.UnreadCountResponse{Count: count}, "Success")
}

// MarkAsRead handles PUT /api/notifications/mark-read
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	userID, httpErr := c.userIDFromContext(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.MarkAsReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if appErr := c.NotificationService.MarkAsRead(ctx.Request().Context(), userID, req.IDs); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Marked as read")
}

// MarkAllAsRead handles PUT /api/notifications/mark-all-read
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	userID, httpErr := c.userIDFromContext(ctx)
	if httpErr != nil {
		return httpErr
	}

	if appErr := c.NotificationService.MarkAllAsRead(ctx.Request().Context(), userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Marked all as read")
}

// userIDFromContext reads the claims AuthMiddleware stored on the context.
func (c *NotificationController) userIDFromContext(ctx echo.Context) (uuid.UUID, *echo.HTTPError) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	return claims.UserID, nil
}
