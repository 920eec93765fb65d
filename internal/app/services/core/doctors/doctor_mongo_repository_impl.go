package doctors

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
	doctorMongoRepositoryInstance contracts.DoctorRepository
	onceDoctorMongoRepository     sync.Once
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	onceDoctorMongoRepository.Do(func() {
		doctorMongoRepositoryInstance = &DoctorMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
		}
	})
	return doctorMongoRepositoryInstance
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	result, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *DoctorMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *DoctorMongoRepository) FindByDepartmentID(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	return r.findByFilter(ctx, bson.M{"departmentId": departmentID})
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(doctor.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	doctor.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"specialty":           doctor.Specialty,
		"consultationFee":     doctor.ConsultationFee,
		"workDays":            doctor.WorkDays,
		"startTime":           doctor.StartTime,
		"endTime":             doctor.EndTime,
		"slotDurationMinutes": doctor.SlotDurationMinutes,
		"updatedAt":           doctor.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctorList := make([]models.Doctor, 0)
	for cursor.Next(ctx) {
		var doctor models.Doctor
		if err := cursor.Decode(&doctor); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		doctorList = append(doctorList, doctor)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctorList, nil
}
