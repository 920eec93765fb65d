package consultations

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
	consultationMongoRepositoryInstance contracts.ConsultationRepository
	onceConsultationMongoRepository     sync.Once
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	onceConsultationMongoRepository.Do(func() {
		consultationMongoRepositoryInstance = &ConsultationMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
		}
	})
	return consultationMongoRepositoryInstance
}

func (r *ConsultationMongoRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var consultation models.Consultation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) UpdateConsultation(ctx context.Context, consultation *models.Consultation) error {
	objectID, err := primitive.ObjectIDFromHex(consultation.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	consultation.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"diagnosis":            consultation.Diagnosis,
		"notes":                consultation.Notes,
		"requiresLabTest":      consultation.RequiresLabTest,
		"requiresPrescription": consultation.RequiresPrescription,
		"updatedAt":            consultation.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
