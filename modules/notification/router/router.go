package router

import (
	"playzio-api/core/middleware"
	"playzio-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

// NotificationRouter handles in-app notification routes
type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{NotificationController: notificationController}
}

// Setup registers notification routes behind the auth middleware.
func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/api/notifications", mw.AuthMiddleware())

	group.GET("", r.NotificationController.GetMyNotifications)
	group.GET("/unread-count", r.NotificationController.CountUnread)
	group.PUT("/mark-read", r.NotificationController.MarkAsRead)
	group.PUT("/mark-all-read", r.NotificationController.MarkAllAsRead)
}
