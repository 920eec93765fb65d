package labtests

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
	labTestRequestMongoRepositoryInstance contracts.LabTestRequestRepository
	onceLabTestRequestMongoRepository     sync.Once
)

type LabTestRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestRequestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRequestRepository {
	onceLabTestRequestMongoRepository.Do(func() {
		labTestRequestMongoRepositoryInstance = &LabTestRequestMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTestRequests),
		}
	})
	return labTestRequestMongoRepositoryInstance
}

func (r *LabTestRequestMongoRepository) CreateRequest(ctx context.Context, request *models.LabTestRequest) (string, error) {
	result, err := r.Collection.InsertOne(ctx, request)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabTestRequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.LabTestRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var request models.LabTestRequest
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (r *LabTestRequestMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabTestRequest, error) {
	return r.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (r *LabTestRequestMongoRepository) FindByConsultationID(ctx context.Context, consultationID string) ([]models.LabTestRequest, error) {
	return r.findByFilter(ctx, bson.M{"consultationId": consultationID})
}

func (r *LabTestRequestMongoRepository) FindByConsultationAndTemplate(ctx context.Context, consultationID, templateID string) (*models.LabTestRequest, error) {
	var request models.LabTestRequest
	err := r.Collection.FindOne(ctx, bson.M{"consultationId": consultationID, "templateId": templateID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (r *LabTestRequestMongoRepository) FindAll(ctx context.Context) ([]models.LabTestRequest, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *LabTestRequestMongoRepository) UpdateRequest(ctx context.Context, request *models.LabTestRequest) error {
	objectID, err := primitive.ObjectIDFromHex(request.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	request.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"status":       request.Status,
		"technicianId": request.TechnicianID,
		"updatedAt":    request.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *LabTestRequestMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.LabTestRequest, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	requests := make([]models.LabTestRequest, 0)
	for cursor.Next(ctx) {
		var request models.LabTestRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		requests = append(requests, request)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return requests, nil
}
