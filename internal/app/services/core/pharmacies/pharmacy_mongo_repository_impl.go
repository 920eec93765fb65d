package pharmacies

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
	pharmacyMongoRepositoryInstance contracts.PharmacyRepository
	oncePharmacyMongoRepository     sync.Once
)

type PharmacyMongoRepository struct {
	Collection *mongo.Collection
}

func NewPharmacyMongoRepository(db *mongo.Client, dbName string) contracts.PharmacyRepository {
	oncePharmacyMongoRepository.Do(func() {
		pharmacyMongoRepositoryInstance = &PharmacyMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPharmacies),
		}
	})
	return pharmacyMongoRepositoryInstance
}

func (r *PharmacyMongoRepository) CreatePharmacy(ctx context.Context, pharmacy *models.Pharmacy) (string, error) {
	result, err := r.Collection.InsertOne(ctx, pharmacy)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PharmacyMongoRepository) FindByID(ctx context.Context, pharmacyID string) (*models.Pharmacy, error) {
	objectID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var pharmacy models.Pharmacy
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&pharmacy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &pharmacy, nil
}

func (r *PharmacyMongoRepository) FindAll(ctx context.Context) ([]models.Pharmacy, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	pharmacies := make([]models.Pharmacy, 0)
	for cursor.Next(ctx) {
		var pharmacy models.Pharmacy
		if err := cursor.Decode(&pharmacy); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		pharmacies = append(pharmacies, pharmacy)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return pharmacies, nil
}

func (r *PharmacyMongoRepository) DeleteByID(ctx context.Context, pharmacyID string) error {
	objectID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
