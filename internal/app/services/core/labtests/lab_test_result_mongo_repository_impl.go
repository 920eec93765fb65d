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
	labTestResultMongoRepositoryInstance contracts.LabTestResultRepository
	onceLabTestResultMongoRepository     sync.Once
)

type LabTestResultMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestResultMongoRepository(db *mongo.Client, dbName string) contracts.LabTestResultRepository {
	onceLabTestResultMongoRepository.Do(func() {
		labTestResultMongoRepositoryInstance = &LabTestResultMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTestResults),
		}
	})
	return labTestResultMongoRepositoryInstance
}

func (r *LabTestResultMongoRepository) CreateResult(ctx context.Context, result *models.LabTestResult) (string, error) {
	inserted, err := r.Collection.InsertOne(ctx, result)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabTestResultMongoRepository) FindByRequestID(ctx context.Context, requestID string) (*models.LabTestResult, error) {
	var result models.LabTestResult
	err := r.Collection.FindOne(ctx, bson.M{"requestId": requestID}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &result, nil
}
