package controller

import (
	"playzio-api/core/controller"
	"playzio-api/core/errors"
	"playzio-api/modules/slot/dto"
	"playzio-api/modules/slot/service"

	"github.com/labstack/echo/v4"
)

// SlotController handles availability slot HTTP requests
type SlotController struct {
	controller.BaseController
	SlotService service.SlotServiceInterface
}

func NewSlotController(svc service.SlotServiceInterface) *SlotController {
	return &SlotController{
		BaseController: controller.NewBaseController(),
		SlotService:    svc,
	}
}

// List handles GET /api/slots?type=&user=&view=
func (c *SlotController) List(ctx echo.Context) error {
	activityType := ctx.QueryParam("type")
	username := ctx.QueryParam("user")
	view := service.View(ctx.QueryParam("view"))

	switch view {
	case service.ViewAll, service.ViewMine, service.ViewPublic, service.ViewFriends, service.ViewGroups:
	default:
		return c.BadRequest(errors.ErrInvalidInput, "view must be one of mine, public, friends, groups")
	}
	if view == service.ViewMine && username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "user query parameter is required for view=mine")
	}

	result, appErr := c.SlotService.ListSlots(ctx.Request().Context(), activityType, username, view)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /api/slots
func (c *SlotController) Create(ctx echo.Context) error {
	var req dto.CreateSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SlotService.CreateSlot(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slot created")
}

// Join handles POST /api/slots/:id/join
func (c *SlotController) Join(ctx echo.Context) error {
	var req dto.JoinSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SlotService.JoinSlot(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Joined slot")
}

// Leave handles POST /api/slots/:id/leave
func (c *SlotController) Leave(ctx echo.Context) error {
	var req dto.JoinSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SlotService.LeaveSlot(ctx.Request().Context(), ctx.Param("id"), req.Participant)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Left slot")
}

// Delete handles DELETE /api/slots/:id
func (c *SlotController) Delete(ctx echo.Context) error {
	var req dto.DeleteSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.CreatedBy == "" {
		return c.BadRequest(errors.ErrInvalidInput, "createdBy is required")
	}

	if appErr := c.SlotService.DeleteSlot(ctx.Request().Context(), ctx.Param("id"), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Slot deleted")
}
