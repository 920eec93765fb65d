package hospitals

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
	hospitalMongoRepositoryInstance contracts.HospitalRepository
	onceHospitalMongoRepository     sync.Once
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) contracts.HospitalRepository {
	onceHospitalMongoRepository.Do(func() {
		hospitalMongoRepositoryInstance = &HospitalMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
		}
	})
	return hospitalMongoRepositoryInstance
}

func (r *HospitalMongoRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error) {
	result, err := r.Collection.InsertOne(ctx, hospital)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HospitalMongoRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var hospital models.Hospital
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) FindAll(ctx context.Context) ([]models.Hospital, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	hospitals := make([]models.Hospital, 0)
	for cursor.Next(ctx) {
		var hospital models.Hospital
		if err := cursor.Decode(&hospital); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitals, nil
}

func (r *HospitalMongoRepository) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	objectID, err := primitive.ObjectIDFromHex(hospital.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	hospital.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"name":      hospital.Name,
		"address":   hospital.Address,
		"phone":     hospital.Phone,
		"updatedAt": hospital.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HospitalMongoRepository) DeleteByID(ctx context.Context, hospitalID string) error {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
