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
	notificationDispatcherInstance contracts.NotificationDispatcher
	onceNotificationDispatcher     sync.Once
)

// queueNotificationDispatcher hands notifications to the queue, the
// worker persists them.
type queueNotificationDispatcher struct {
	MessageQueueService contracts.MessageQueueService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewQueueNotificationDispatcher(
	messageQueueService contracts.MessageQueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NotificationDispatcher {
	onceNotificationDispatcher.Do(func() {
		notificationDispatcherInstance = &queueNotificationDispatcher{
			MessageQueueService: messageQueueService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return notificationDispatcherInstance
}

func (d *queueNotificationDispatcher) Dispatch(ctx context.Context, notification *models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	notification.SetCreatedAtUpdatedAt()
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	queueName := d.InternalConfig.RabbitMQ.NotificationQueue
	if err := d.MessageQueueService.Publish(ctx, queueName, body); err != nil {
		return err
	}

	d.Log.Info("queueNotificationDispatcher.Dispatch published notification",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queueName),
		zap.String(constvars.LoggingUserIDKey, notification.UserID),
	)
	return nil
}
