package controller

import (
	"playzio-api/core/controller"
	"playzio-api/core/errors"
	"playzio-api/modules/message/dto"
	"playzio-api/modules/message/service"

	"github.com/labstack/echo/v4"
)

// MessageController handles direct message HTTP requests
type MessageController struct {
	controller.BaseController
	MessageService service.MessageServiceInterface
}

func NewMessageController(svc service.MessageServiceInterface) *MessageController {
	return &MessageController{
		BaseController: controller.NewBaseController(),
		MessageService: svc,
	}
}

// Send handles POST /api/messages
func (c *MessageController) Send(ctx echo.Context) error {
	var req dto.SendMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MessageService.SendMessage(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Message sent")
}

// Conversation handles GET /api/messages?user=&with=
func (c *MessageController) Conversation(ctx echo.Context) error {
	username := ctx.QueryParam("user")
	withUsername := ctx.QueryParam("with")
	if username == "" || withUsername == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user and with query parameters are required")
	}

	result, appErr := c.MessageService.GetConversation(ctx.Request().Context(), username, withUsername)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Unread handles GET /api/messages/unread?user=
func (c *MessageController) Unread(ctx echo.Context) error {
	username := ctx.QueryParam("user")
	if username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user query parameter is required")
	}

	result, appErr := c.MessageService.UnreadCount(ctx.Request().Context(), username)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// MarkRead handles POST /api/messages/read
func (c *MessageController) MarkRead(ctx echo.Context) error {
	var req dto.MarkReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.MessageService.MarkRead(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Messages marked read")
}
