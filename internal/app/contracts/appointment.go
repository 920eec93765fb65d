package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	ApproveAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.ApproveAppointment) (*responses.Appointment, error)
	RejectAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error)
}

type SlotUsecase interface {
	GetAvailableSlots(ctx context.Context, request *requests.GetAvailableSlots) (*responses.AvailableSlots, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	CountActiveByPatientID(ctx context.Context, patientID string) (int64, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}
