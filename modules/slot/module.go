package slot

import (
	"context"
	"time"

	"playzio-api/core/cache"
	"playzio-api/core/constants"
	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/core/queue"
	"playzio-api/modules/friend"
	"playzio-api/modules/group"
	"playzio-api/modules/slot/controller"
	"playzio-api/modules/slot/repository"
	"playzio-api/modules/slot/router"
	"playzio-api/modules/slot/service"
	"playzio-api/modules/user"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the slot module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.Cache, queueClient *queue.Client) {
	svc := GetService(db, c, queueClient)
	ctrl := controller.NewSlotController(svc)
	rtr := router.NewSlotRouter(ctrl)

	rtr.Setup(e)
}

// GetService creates a SlotService instance for use by other modules
func GetService(db database.Database, c cache.Cache, queueClient *queue.Client) service.SlotServiceInterface {
	repo := repository.NewSlotRepository(db)
	return service.NewSlotService(
		repo,
		user.GetService(db),
		friend.GetService(db, c, queueClient),
		group.GetService(db, c),
		queueClient,
	)
}

// NewPurgeHandler returns the task handler that deletes expired slots.
func NewPurgeHandler(db database.Database) func(context.Context, *asynq.Task) error {
	repo := repository.NewSlotRepository(db)

	return func(ctx context.Context, t *asynq.Task) error {
		now := time.Now()
		purged, err := repo.DeleteExpired(ctx, now.Format(constants.DateLayout), now.Format(constants.TimeLayout))
		if err != nil {
			logger.Error("SlotModule:PurgeHandler", "error", err)
			return err
		}
		if purged > 0 {
			logger.Info("SlotModule:PurgeHandler", "purged", purged)
		}
		return nil
	}
}
