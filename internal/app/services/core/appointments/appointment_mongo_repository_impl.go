package appointments

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
	appointmentMongoRepositoryInstance contracts.AppointmentRepository
	onceAppointmentMongoRepository     sync.Once
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	onceAppointmentMongoRepository.Do(func() {
		appointmentMongoRepositoryInstance = &AppointmentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
		}
	})
	return appointmentMongoRepositoryInstance
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{"doctorId": doctorID, "date": date})
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *AppointmentMongoRepository) CountActiveByPatientID(ctx context.Context, patientID string) (int64, error) {
	filter := bson.M{
		"patientId": patientID,
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusPending,
			constvars.AppointmentStatusApproved,
		}},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	appointment.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"status":          appointment.Status,
		"rejectionReason": appointment.RejectionReason,
		"vitals":          appointment.Vitals,
		"updatedAt":       appointment.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	for cursor.Next(ctx) {
		var appointment models.Appointment
		if err := cursor.Decode(&appointment); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		appointments = append(appointments, appointment)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
