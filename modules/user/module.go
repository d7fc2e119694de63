package user

import (
	"playzio-api/core/database"
	"playzio-api/core/middleware"
	"playzio-api/modules/user/controller"
	"playzio-api/modules/user/repository"
	"playzio-api/modules/user/router"
	"playzio-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)
	rtr := router.NewUserRouter(ctrl)

	rtr.Setup(e, mw)
}

// GetService creates a UserService instance for use by other modules
func GetService(db database.Database) service.UserServiceInterface {
	return service.NewUserService(repository.NewUserRepository(db))
}
