package group

import (
	"playzio-api/core/cache"
	"playzio-api/core/database"
	"playzio-api/modules/group/controller"
	"playzio-api/modules/group/repository"
	"playzio-api/modules/group/router"
	"playzio-api/modules/group/service"
	"playzio-api/modules/user"

	"github.com/labstack/echo/v4"
)

// Init initializes the group module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	svc := GetService(db, c)
	ctrl := controller.NewGroupController(svc)
	rtr := router.NewGroupRouter(ctrl)

	rtr.Setup(e)
}

// GetService creates a GroupService instance for use by other modules
func GetService(db database.Database, c cache.Cache) service.GroupServiceInterface {
	repo := repository.NewGroupRepository(db)
	return service.NewGroupService(repo, user.GetService(db), c)
}
