package router

import (
	"playzio-api/modules/slot/controller"

	"github.com/labstack/echo/v4"
)

// SlotRouter handles availability slot routes
type SlotRouter struct {
	SlotController *controller.SlotController
}

func NewSlotRouter(slotController *controller.SlotController) *SlotRouter {
	return &SlotRouter{SlotController: slotController}
}

// Setup registers availability slot routes
func (r *SlotRouter) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/slots", r.SlotController.List)
	api.POST("/slots", r.SlotController.Create)
	api.POST("/slots/:id/join", r.SlotController.Join)
	api.POST("/slots/:id/leave", r.SlotController.Leave)
	api.DELETE("/slots/:id", r.SlotController.Delete)
}
