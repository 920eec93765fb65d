package departments

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
	departmentMongoRepositoryInstance contracts.DepartmentRepository
	onceDepartmentMongoRepository     sync.Once
)

type DepartmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDepartmentMongoRepository(db *mongo.Client, dbName string) contracts.DepartmentRepository {
	onceDepartmentMongoRepository.Do(func() {
		departmentMongoRepositoryInstance = &DepartmentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionDepartments),
		}
	})
	return departmentMongoRepositoryInstance
}

func (r *DepartmentMongoRepository) CreateDepartment(ctx context.Context, department *models.Department) (string, error) {
	result, err := r.Collection.InsertOne(ctx, department)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DepartmentMongoRepository) FindByID(ctx context.Context, departmentID string) (*models.Department, error) {
	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var department models.Department
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindAll(ctx context.Context) ([]models.Department, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	departments := make([]models.Department, 0)
	for cursor.Next(ctx) {
		var department models.Department
		if err := cursor.Decode(&department); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		departments = append(departments, department)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return departments, nil
}

func (r *DepartmentMongoRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	objectID, err := primitive.ObjectIDFromHex(department.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	department.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"name":        department.Name,
		"description": department.Description,
		"updatedAt":   department.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DepartmentMongoRepository) DeleteByID(ctx context.Context, departmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
