package nurses

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
	nurseMongoRepositoryInstance contracts.NurseRepository
	onceNurseMongoRepository     sync.Once
)

type NurseMongoRepository struct {
	Collection *mongo.Collection
}

func NewNurseMongoRepository(db *mongo.Client, dbName string) contracts.NurseRepository {
	onceNurseMongoRepository.Do(func() {
		nurseMongoRepositoryInstance = &NurseMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionNurses),
		}
	})
	return nurseMongoRepositoryInstance
}

func (r *NurseMongoRepository) CreateNurse(ctx context.Context, nurse *models.Nurse) (string, error) {
	result, err := r.Collection.InsertOne(ctx, nurse)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NurseMongoRepository) FindByID(ctx context.Context, nurseID string) (*models.Nurse, error) {
	objectID, err := primitive.ObjectIDFromHex(nurseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *NurseMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Nurse, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *NurseMongoRepository) FindAll(ctx context.Context) ([]models.Nurse, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	nurseList := make([]models.Nurse, 0)
	for cursor.Next(ctx) {
		var nurse models.Nurse
		if err := cursor.Decode(&nurse); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		nurseList = append(nurseList, nurse)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nurseList, nil
}

func (r *NurseMongoRepository) DeleteByID(ctx context.Context, nurseID string) error {
	objectID, err := primitive.ObjectIDFromHex(nurseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *NurseMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.Collection.FindOne(ctx, filter).Decode(&nurse)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &nurse, nil
}
