package notification

import (
	"context"
	"encoding/json"

	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/core/middleware"
	"playzio-api/core/queue"
	"playzio-api/modules/notification/controller"
	"playzio-api/modules/notification/dto"
	"playzio-api/modules/notification/repository"
	"playzio-api/modules/notification/router"
	"playzio-api/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	svc := GetService(db)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)
}

// GetService creates a NotificationService instance for use by other modules
func GetService(db database.Database) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	return service.NewNotificationService(repo)
}

// NewTaskHandler returns the task handler that persists queued notification
// deliveries.
func NewTaskHandler(db database.Database) func(context.Context, *asynq.Task) error {
	svc := GetService(db)

	return func(ctx context.Context, t *asynq.Task) error {
		var payload queue.NotificationPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("NotificationModule:TaskHandler - Unmarshal", "error", err)
			return err
		}

		appErr := svc.Create(ctx, &dto.CreateNotificationRequest{
			UserID:  payload.UserID,
			Title:   payload.Title,
			Message: payload.Message,
			Type:    payload.Type,
		})
		if appErr != nil {
			logger.Error("NotificationModule:TaskHandler - Create", "error", appErr)
			return appErr
		}
		return nil
	}
}
