package payments

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	paymentMongoRepositoryInstance contracts.PaymentRepository
	oncePaymentMongoRepository     sync.Once
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	oncePaymentMongoRepository.Do(func() {
		paymentMongoRepositoryInstance = &PaymentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
		}
	})
	return paymentMongoRepositoryInstance
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PaymentMongoRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	objectID, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var payment models.Payment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Payment, error) {
	return r.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (r *PaymentMongoRepository) FindByTypeAndReference(ctx context.Context, paymentType, referenceID string) ([]models.Payment, error) {
	return r.findByFilter(ctx, bson.M{"type": paymentType, "referenceId": referenceID})
}

func (r *PaymentMongoRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *PaymentMongoRepository) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	objectID, err := primitive.ObjectIDFromHex(payment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	payment.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"status":    payment.Status,
		"updatedAt": payment.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PaymentMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	paymentList := make([]models.Payment, 0)
	for cursor.Next(ctx) {
		var payment models.Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		paymentList = append(paymentList, payment)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return paymentList, nil
}
