package notifications

import (
	"context"
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	notificationWorkerInstance *NotificationWorker
	onceNotificationWorker     sync.Once
)

// NotificationWorker drains the notification queue into mongo. Messages
// that cannot be decoded or stored are nacked to the dead letter queue.
type NotificationWorker struct {
	MessageQueueService    contracts.MessageQueueService
	NotificationRepository contracts.NotificationRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewNotificationWorker(
	messageQueueService contracts.MessageQueueService,
	notificationRepository contracts.NotificationRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *NotificationWorker {
	onceNotificationWorker.Do(func() {
		notificationWorkerInstance = &NotificationWorker{
			MessageQueueService:    messageQueueService,
			NotificationRepository: notificationRepository,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return notificationWorkerInstance
}

func (w *NotificationWorker) Start() error {
	queueName := w.InternalConfig.RabbitMQ.NotificationQueue
	w.Log.Info("NotificationWorker.Start consuming",
		zap.String(constvars.LoggingQueueKey, queueName),
	)
	return w.MessageQueueService.Consume(queueName, w.handleMessage)
}

func (w *NotificationWorker) handleMessage(ctx context.Context, body []byte) error {
	var notification models.Notification
	if err := json.Unmarshal(body, &notification); err != nil {
		w.Log.Error("NotificationWorker.handleMessage error decoding message",
			zap.Error(err),
		)
		return err
	}

	notificationID, err := w.NotificationRepository.CreateNotification(ctx, &notification)
	if err != nil {
		w.Log.Error("NotificationWorker.handleMessage error storing notification",
			zap.String(constvars.LoggingUserIDKey, notification.UserID),
			zap.Error(err),
		)
		return err
	}

	w.Log.Info("NotificationWorker.handleMessage stored notification",
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
		zap.String(constvars.LoggingUserIDKey, notification.UserID),
	)
	return nil
}
