package router

import (
	"playzio-api/modules/friend/controller"

	"github.com/labstack/echo/v4"
)

// FriendRouter handles friendship routes
type FriendRouter struct {
	FriendController *controller.FriendController
}

func NewFriendRouter(friendController *controller.FriendController) *FriendRouter {
	return &FriendRouter{FriendController: friendController}
}

// Setup registers friendship routes
func (r *FriendRouter) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/friends", r.FriendController.ListFriends)
	api.GET("/friends/requests", r.FriendController.ListPending)
	api.POST("/friends/requests", r.FriendController.SendRequest)
	api.POST("/friends/requests/:id/accept", r.FriendController.Accept)
	api.POST("/friends/requests/:id/decline", r.FriendController.Decline)
	api.DELETE("/friends/:username", r.FriendController.RemoveFriend)
}
