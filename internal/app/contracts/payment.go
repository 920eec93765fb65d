package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error)
	GetPayments(ctx context.Context, session *models.Session) ([]responses.Payment, error)
	HasCompletedPayment(ctx context.Context, paymentType, referenceID string) (bool, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (string, error)
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Payment, error)
	FindByTypeAndReference(ctx context.Context, paymentType, referenceID string) ([]models.Payment, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
}

type InsuranceUsecase interface {
	CreateInsurance(ctx context.Context, request *requests.CreateInsurance) (*responses.Insurance, error)
	GetInsurances(ctx context.Context) ([]responses.Insurance, error)
	GetInsuranceByID(ctx context.Context, insuranceID string) (*responses.Insurance, error)
	UpdateInsurance(ctx context.Context, insuranceID string, request *requests.UpdateInsurance) (*responses.Insurance, error)
	DeleteInsurance(ctx context.Context, insuranceID string) error
}

type InsuranceRepository interface {
	CreateInsurance(ctx context.Context, insurance *models.Insurance) (string, error)
	FindByID(ctx context.Context, insuranceID string) (*models.Insurance, error)
	FindAll(ctx context.Context) ([]models.Insurance, error)
	UpdateInsurance(ctx context.Context, insurance *models.Insurance) error
	DeleteByID(ctx context.Context, insuranceID string) error
}
