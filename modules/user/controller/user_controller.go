package controller

import (
	"playzio-api/core/controller"
	"playzio-api/core/errors"
	"playzio-api/modules/user/dto"
	"playzio-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// UserController handles account HTTP requests
type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

// Register handles POST /api/register
func (c *UserController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.UserService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "User registered successfully")
}

// Login handles POST /api/login
func (c *UserController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.UserService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Login successful")
}

// GetUser handles GET /api/users/:username
func (c *UserController) GetUser(ctx echo.Context) error {
	username := ctx.Param("username")
	if username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Username is required")
	}

	result, appErr := c.UserService.GetByUsername(ctx.Request().Context(), username)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SearchUsers handles GET /api/users?search=
func (c *UserController) SearchUsers(ctx echo.Context) error {
	result, appErr := c.UserService.Search(ctx.Request().Context(), ctx.QueryParam("search"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// DeleteUser handles DELETE /api/users/:username (admin only)
func (c *UserController) DeleteUser(ctx echo.Context) error {
	username := ctx.Param("username")
	if username == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Username is required")
	}

	if appErr := c.UserService.Delete(ctx.Request().Context(), username); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "User deleted successfully")
}
