package insurances

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
	insuranceMongoRepositoryInstance contracts.InsuranceRepository
	onceInsuranceMongoRepository     sync.Once
)

type InsuranceMongoRepository struct {
	Collection *mongo.Collection
}

func NewInsuranceMongoRepository(db *mongo.Client, dbName string) contracts.InsuranceRepository {
	onceInsuranceMongoRepository.Do(func() {
		insuranceMongoRepositoryInstance = &InsuranceMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionInsurances),
		}
	})
	return insuranceMongoRepositoryInstance
}

func (r *InsuranceMongoRepository) CreateInsurance(ctx context.Context, insurance *models.Insurance) (string, error) {
	result, err := r.Collection.InsertOne(ctx, insurance)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *InsuranceMongoRepository) FindByID(ctx context.Context, insuranceID string) (*models.Insurance, error) {
	objectID, err := primitive.ObjectIDFromHex(insuranceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var insurance models.Insurance
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&insurance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &insurance, nil
}

func (r *InsuranceMongoRepository) FindAll(ctx context.Context) ([]models.Insurance, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	insuranceList := make([]models.Insurance, 0)
	for cursor.Next(ctx) {
		var insurance models.Insurance
		if err := cursor.Decode(&insurance); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		insuranceList = append(insuranceList, insurance)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return insuranceList, nil
}

func (r *InsuranceMongoRepository) UpdateInsurance(ctx context.Context, insurance *models.Insurance) error {
	objectID, err := primitive.ObjectIDFromHex(insurance.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	insurance.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"name":               insurance.Name,
		"coveragePercentage": insurance.CoveragePercentage,
		"updatedAt":          insurance.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *InsuranceMongoRepository) DeleteByID(ctx context.Context, insuranceID string) error {
	objectID, err := primitive.ObjectIDFromHex(insuranceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
