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
	labTestTemplateMongoRepositoryInstance contracts.LabTestTemplateRepository
	onceLabTestTemplateMongoRepository     sync.Once
)

type LabTestTemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestTemplateMongoRepository(db *mongo.Client, dbName string) contracts.LabTestTemplateRepository {
	onceLabTestTemplateMongoRepository.Do(func() {
		labTestTemplateMongoRepositoryInstance = &LabTestTemplateMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTestTemplates),
		}
	})
	return labTestTemplateMongoRepositoryInstance
}

func (r *LabTestTemplateMongoRepository) CreateTemplate(ctx context.Context, template *models.LabTestTemplate) (string, error) {
	result, err := r.Collection.InsertOne(ctx, template)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabTestTemplateMongoRepository) FindByID(ctx context.Context, templateID string) (*models.LabTestTemplate, error) {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var template models.LabTestTemplate
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *LabTestTemplateMongoRepository) FindAll(ctx context.Context) ([]models.LabTestTemplate, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	templates := make([]models.LabTestTemplate, 0)
	for cursor.Next(ctx) {
		var template models.LabTestTemplate
		if err := cursor.Decode(&template); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		templates = append(templates, template)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, nil
}
