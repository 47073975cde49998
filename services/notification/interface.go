package notification

import (
	"context"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier hands patient notifications to the background worker.
type Notifier interface {
	Notify(ctx context.Context, payload models.NotificationPayload) error
}

// QueueNotifier enqueues notifications on the asynq queue.
type QueueNotifier struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewQueueNotifier(opt asynq.RedisClientOpt, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{client: asynq.NewClient(opt), logger: logger}
}

func (n *QueueNotifier) Notify(ctx context.Context, payload models.NotificationPayload) error {
	task, opts, err := tasks.NewNotificationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}
	info, err := n.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	n.logger.Debug("notification enqueued",
		zap.String("task", info.ID),
		zap.String("type", payload.Type),
		zap.String("patient", payload.PatientEmail))
	return nil
}

func (n *QueueNotifier) Close() error {
	return n.client.Close()
}

// NoopNotifier drops notifications. Used when no queue is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, models.NotificationPayload) error { return nil }

// Message renders the text stored for a notification payload.
func Message(p models.NotificationPayload) string {
	switch p.Type {
	case models.NotificationBookingConfirmed:
		return fmt.Sprintf("Your appointment for %s on %s at %s is booked.", p.Treatment, p.Date, p.Slot)
	case models.NotificationPaymentReceived:
		return fmt.Sprintf("Payment received for %s on %s. Transaction %s.", p.Treatment, p.Date, p.Transaction)
	default:
		return ""
	}
}
