package medications

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
	medicationMongoRepositoryInstance contracts.MedicationRepository
	onceMedicationMongoRepository     sync.Once
)

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	onceMedicationMongoRepository.Do(func() {
		medicationMongoRepositoryInstance = &MedicationMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedications),
		}
	})
	return medicationMongoRepositoryInstance
}

func (r *MedicationMongoRepository) CreateMedication(ctx context.Context, medication *models.Medication) (string, error) {
	result, err := r.Collection.InsertOne(ctx, medication)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicationMongoRepository) FindByID(ctx context.Context, medicationID string) (*models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var medication models.Medication
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&medication)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medication, nil
}

func (r *MedicationMongoRepository) FindAll(ctx context.Context) ([]models.Medication, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *MedicationMongoRepository) FindByPharmacyID(ctx context.Context, pharmacyID string) ([]models.Medication, error) {
	return r.findByFilter(ctx, bson.M{"pharmacyId": pharmacyID})
}

func (r *MedicationMongoRepository) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	objectID, err := primitive.ObjectIDFromHex(medication.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	medication.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"name":          medication.Name,
		"description":   medication.Description,
		"unitPrice":     medication.UnitPrice,
		"stockQuantity": medication.StockQuantity,
		"updatedAt":     medication.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicationMongoRepository) DeleteByID(ctx context.Context, medicationID string) error {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *MedicationMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Medication, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medications := make([]models.Medication, 0)
	for cursor.Next(ctx) {
		var medication models.Medication
		if err := cursor.Decode(&medication); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		medications = append(medications, medication)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}
