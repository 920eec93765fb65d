package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
)

// NotificationDispatcher publishes notifications to the queue so request
// handling never blocks on persistence of a notification.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification *models.Notification) error
}

type NotificationUsecase interface {
	GetNotifications(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Notification, int64, error)
	MarkAsRead(ctx context.Context, session *models.Session, notificationID string) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByUserID(ctx context.Context, userID string, pagination *requests.Pagination) ([]models.Notification, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	UpdateNotification(ctx context.Context, notification *models.Notification) error
}
