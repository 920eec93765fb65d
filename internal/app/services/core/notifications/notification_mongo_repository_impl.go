package notifications

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	notificationMongoRepositoryInstance contracts.NotificationRepository
	onceNotificationMongoRepository     sync.Once
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	onceNotificationMongoRepository.Do(func() {
		notificationMongoRepositoryInstance = &NotificationMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
		}
	})
	return notificationMongoRepositoryInstance
}

func (r *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NotificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var notification models.Notification
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (r *NotificationMongoRepository) FindByUserID(ctx context.Context, userID string, pagination *requests.Pagination) ([]models.Notification, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	if pagination != nil {
		findOptions.SetSkip(int64(pagination.Offset())).SetLimit(int64(pagination.PageSize))
	}
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notifications := make([]models.Notification, 0)
	for cursor.Next(ctx) {
		var notification models.Notification
		if err := cursor.Decode(&notification); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		notifications = append(notifications, notification)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (r *NotificationMongoRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (r *NotificationMongoRepository) UpdateNotification(ctx context.Context, notification *models.Notification) error {
	objectID, err := primitive.ObjectIDFromHex(notification.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	notification.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"read":      notification.Read,
		"updatedAt": notification.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
