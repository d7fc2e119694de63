package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playzio-api/core/cache"
	"playzio-api/core/config"
	"playzio-api/core/database"
	"playzio-api/core/logger"
	"playzio-api/core/middleware"
	"playzio-api/core/queue"
	"playzio-api/modules/friend"
	"playzio-api/modules/group"
	"playzio-api/modules/message"
	"playzio-api/modules/notification"
	"playzio-api/modules/slot"
	"playzio-api/modules/user"

	"github.com/labstack/echo/v4"
)

// Run wires config, logging, storage, the background worker and all modules,
// then serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	cacheClient, err := cache.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer cacheClient.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	worker := queue.NewWorker(cfg)
	worker.HandleFunc(queue.TypeNotificationDeliver, notification.NewTaskHandler(db))
	worker.HandleFunc(queue.TypeSlotPurgeExpired, slot.NewPurgeHandler(db))
	go func() {
		if err := worker.Start(); err != nil {
			logger.Error("Server:Worker:Start", "error", err)
		}
	}()
	defer worker.Shutdown()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware()
	mw.Setup(e)

	user.Init(e, db, mw)
	slot.Init(e, db, cacheClient, queueClient)
	group.Init(e, db, cacheClient)
	friend.Init(e, db, cacheClient, queueClient)
	message.Init(e, db, cacheClient)
	notification.Init(e, db, mw)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
