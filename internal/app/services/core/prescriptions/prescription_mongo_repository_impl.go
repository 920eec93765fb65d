package prescriptions

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
	prescriptionMongoRepositoryInstance contracts.PrescriptionRepository
	oncePrescriptionMongoRepository     sync.Once
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	oncePrescriptionMongoRepository.Do(func() {
		prescriptionMongoRepositoryInstance = &PrescriptionMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
		}
	})
	return prescriptionMongoRepositoryInstance
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var prescription models.Prescription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (r *PrescriptionMongoRepository) FindByPharmacyID(ctx context.Context, pharmacyID string) ([]models.Prescription, error) {
	return r.findByFilter(ctx, bson.M{"pharmacyId": pharmacyID})
}

func (r *PrescriptionMongoRepository) FindByConsultationID(ctx context.Context, consultationID string) ([]models.Prescription, error) {
	return r.findByFilter(ctx, bson.M{"consultationId": consultationID})
}

func (r *PrescriptionMongoRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *PrescriptionMongoRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	objectID, err := primitive.ObjectIDFromHex(prescription.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	prescription.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"pharmacistId":    prescription.PharmacistID,
		"status":          prescription.Status,
		"rejectionReason": prescription.RejectionReason,
		"unitPrice":       prescription.UnitPrice,
		"totalPrice":      prescription.TotalPrice,
		"updatedAt":       prescription.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := make([]models.Prescription, 0)
	for cursor.Next(ctx) {
		var prescription models.Prescription
		if err := cursor.Decode(&prescription); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		prescriptions = append(prescriptions, prescription)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}
