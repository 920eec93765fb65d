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
	hospitalDepartmentMongoRepositoryInstance contracts.HospitalDepartmentRepository
	onceHospitalDepartmentMongoRepository     sync.Once
)

type HospitalDepartmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalDepartmentMongoRepository(db *mongo.Client, dbName string) contracts.HospitalDepartmentRepository {
	onceHospitalDepartmentMongoRepository.Do(func() {
		hospitalDepartmentMongoRepositoryInstance = &HospitalDepartmentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitalDepartments),
		}
	})
	return hospitalDepartmentMongoRepositoryInstance
}

func (r *HospitalDepartmentMongoRepository) CreateAssignment(ctx context.Context, assignment *models.HospitalDepartment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, assignment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HospitalDepartmentMongoRepository) FindByHospitalAndDepartment(ctx context.Context, hospitalID, departmentID string) (*models.HospitalDepartment, error) {
	var assignment models.HospitalDepartment
	err := r.Collection.FindOne(ctx, bson.M{"hospitalId": hospitalID, "departmentId": departmentID}).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assignment, nil
}

func (r *HospitalDepartmentMongoRepository) FindByHospitalID(ctx context.Context, hospitalID string) ([]models.HospitalDepartment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"hospitalId": hospitalID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	assignments := make([]models.HospitalDepartment, 0)
	for cursor.Next(ctx) {
		var assignment models.HospitalDepartment
		if err := cursor.Decode(&assignment); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		assignments = append(assignments, assignment)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assignments, nil
}
