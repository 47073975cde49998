package cron

import (
	"context"
	"fmt"

	notificationRepo "doctorsportal/database/repository/notification"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotificationWorker consumes notification tasks and stores them for patients.
type NotificationWorker struct {
	srv    *asynq.Server
	repo   notificationRepo.NotificationRepository
	logger *zap.Logger
}

func NewNotificationWorker(opt asynq.RedisClientOpt, repo notificationRepo.NotificationRepository, logger *zap.Logger) *NotificationWorker {
	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return &NotificationWorker{srv: srv, repo: repo, logger: logger}
}

// Start runs the worker in the background.
func (w *NotificationWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendNotification, w.HandleNotificationTask)

	if err := w.srv.Start(mux); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}
	w.logger.Info("notification worker started")
	return nil
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *NotificationWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleNotificationTask stores the notification described by task.
func (w *NotificationWorker) HandleNotificationTask(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseNotificationTask(task)
	if err != nil {
		w.logger.Error("invalid notification payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	message := notification.Message(p)
	if p.PatientEmail == "" || message == "" {
		w.logger.Warn("dropping notification", zap.String("type", p.Type))
		return nil
	}

	n := &models.Notification{
		PatientEmail: p.PatientEmail,
		Type:         p.Type,
		Message:      message,
		BookingID:    p.BookingID,
	}
	if err := w.repo.Create(ctx, n); err != nil {
		w.logger.Error("failed to store notification", zap.Error(err))
		return err
	}
	return nil
}
