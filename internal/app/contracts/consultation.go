package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	SaveConsultation(ctx context.Context, session *models.Session, request *requests.SaveConsultation) (*responses.Consultation, error)
	GetConsultationByAppointmentID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Consultation, error)
}

type ConsultationRepository interface {
	CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error)
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Consultation, error)
	UpdateConsultation(ctx context.Context, consultation *models.Consultation) error
}
