package router

import (
	"playzio-api/core/middleware"
	"playzio-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

// UserRouter handles account routes
type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

// Setup registers account routes
func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")

	api.POST("/register", r.UserController.Register)
	api.POST("/login", r.UserController.Login)
	api.GET("/users", r.UserController.SearchUsers)
	api.GET("/users/:username", r.UserController.GetUser)

	// Account removal is the one admin-gated operation.
	api.DELETE("/users/:username", r.UserController.DeleteUser, mw.AuthMiddleware(), mw.RequireAdmin())
}
