package router

import (
	"playzio-api/modules/message/controller"

	"github.com/labstack/echo/v4"
)

// MessageRouter handles direct message routes
type MessageRouter struct {
	MessageController *controller.MessageController
}

func NewMessageRouter(messageController *controller.MessageController) *MessageRouter {
	return &MessageRouter{MessageController: messageController}
}

// Setup registers direct message routes
func (r *MessageRouter) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/messages", r.MessageController.Send)
	api.GET("/messages", r.MessageController.Conversation)
	api.GET("/messages/unread", r.MessageController.Unread)
	api.POST("/messages/read", r.MessageController.MarkRead)
}
