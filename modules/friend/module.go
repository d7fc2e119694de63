package friend

import (
	"playzio-api/core/cache"
	"playzio-api/core/database"
	"playzio-api/core/queue"
	"playzio-api/modules/friend/controller"
	"playzio-api/modules/friend/repository"
	"playzio-api/modules/friend/router"
	"playzio-api/modules/friend/service"
	"playzio-api/modules/user"

	"github.com/labstack/echo/v4"
)

// Init initializes the friend module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.Cache, queueClient *queue.Client) {
	svc := GetService(db, c, queueClient)
	ctrl := controller.NewFriendController(svc)
	rtr := router.NewFriendRouter(ctrl)

	rtr.Setup(e)
}

// GetService creates a FriendService instance for use by other modules
func GetService(db database.Database, c cache.Cache, queueClient *queue.Client) service.FriendServiceInterface {
	repo := repository.NewFriendRepository(db)
	return service.NewFriendService(repo, user.GetService(db), c, queueClient)
}
