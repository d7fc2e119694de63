package queue

import (
	"context"
	"encoding/json"

	"playzio-api/core/config"
	"playzio-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task types processed by the background worker.
const (
	TypeNotificationDeliver = "notification:deliver"
	TypeSlotPurgeExpired    = "slot:purge_expired"
)

// NotificationPayload is the body of a notification:deliver task.
type NotificationPayload struct {
	UserID  uuid.UUID `json:"user_id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{client: asynq.NewClient(redisOpt(cfg))}
}

// EnqueueNotification schedules an in-app notification write. Enqueue
// failures are logged, not propagated: a lost notification must never fail
// the request that triggered it.
func (c *Client) EnqueueNotification(ctx context.Context, payload NotificationPayload) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Queue:EnqueueNotification:Marshal", "error", err)
		return
	}

	task := asynq.NewTask(TypeNotificationDeliver, raw)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		logger.Error("Queue:EnqueueNotification:Enqueue", "error", err, "user_id", payload.UserID)
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Worker runs the asynq server plus the periodic scheduler.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	purgeCron string
}

func NewWorker(cfg *config.Config) *Worker {
	opt := redisOpt(cfg.Redis)
	return &Worker{
		server: asynq.NewServer(opt, asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
		}),
		scheduler: asynq.NewScheduler(opt, nil),
		mux:       asynq.NewServeMux(),
		purgeCron: cfg.Queue.PurgeCron,
	}
}

// HandleFunc registers a handler for a task type.
func (w *Worker) HandleFunc(taskType string, handler func(context.Context, *asynq.Task) error) {
	w.mux.HandleFunc(taskType, handler)
}

// Start launches the worker and registers the expired-slot purge schedule.
// Listings filter expired slots at read time; the purge is storage hygiene.
func (w *Worker) Start() error {
	if _, err := w.scheduler.Register(w.purgeCron, asynq.NewTask(TypeSlotPurgeExpired, nil)); err != nil {
		return err
	}
	if err := w.scheduler.Start(); err != nil {
		return err
	}
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}
