package message

import (
	"playzio-api/core/cache"
	"playzio-api/core/database"
	friendrepository "playzio-api/modules/friend/repository"
	"playzio-api/modules/message/controller"
	"playzio-api/modules/message/repository"
	"playzio-api/modules/message/router"
	"playzio-api/modules/message/service"
	"playzio-api/modules/user"

	"github.com/labstack/echo/v4"
)

// Init initializes the message module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	svc := GetService(db, c)
	ctrl := controller.NewMessageController(svc)
	rtr := router.NewMessageRouter(ctrl)

	rtr.Setup(e)
}

// GetService creates a MessageService instance for use by other modules
func GetService(db database.Database, c cache.Cache) service.MessageServiceInterface {
	repo := repository.NewMessageRepository(db)
	friendRepo := friendrepository.NewFriendRepository(db)
	return service.NewMessageService(repo, user.GetService(db), friendRepo, c)
}
