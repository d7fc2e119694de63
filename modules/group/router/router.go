package router

import (
	"playzio-api/modules/group/controller"

	"github.com/labstack/echo/v4"
)

// GroupRouter handles group routes
type GroupRouter struct {
	GroupController *controller.GroupController
}

func NewGroupRouter(groupController *controller.GroupController) *GroupRouter {
	return &GroupRouter{GroupController: groupController}
}

// Setup registers group routes
func (r *GroupRouter) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/groups", r.GroupController.GetGroups)
	api.POST("/groups", r.GroupController.CreateGroup)
	api.GET("/groups/:id/members", r.GroupController.GetMembers)
	api.POST("/groups/:id/members", r.GroupController.AddMember)
	api.DELETE("/groups/:id/members/:username", r.GroupController.RemoveMember)
	api.DELETE("/groups/:id", r.GroupController.DeleteGroup)
}
