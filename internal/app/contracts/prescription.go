package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	// CreatePrescription persists one prescription per medication line and
	// returns them in line order.
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) ([]responses.Prescription, error)
	GetPrescriptions(ctx context.Context, session *models.Session) ([]responses.Prescription, error)
	GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error)
	ReviewPrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.ReviewPrescription) (*responses.Prescription, error)
	DispensePrescription(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error)
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindByPharmacyID(ctx context.Context, pharmacyID string) ([]models.Prescription, error)
	FindByConsultationID(ctx context.Context, consultationID string) ([]models.Prescription, error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
}
