package notifications

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) GetNotifications(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Notification, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.GetNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	total, err := uc.NotificationRepository.CountByUserID(ctx, session.UserID)
	if err != nil {
		return nil, 0, err
	}

	notifications, err := uc.NotificationRepository.FindByUserID(ctx, session.UserID, pagination)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (uc *notificationUsecase) MarkAsRead(ctx context.Context, session *models.Session, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	if notification.UserID != session.UserID {
		return exceptions.ErrNotMatchRoleType(nil)
	}

	notification.Read = true
	return uc.NotificationRepository.UpdateNotification(ctx, notification)
}
