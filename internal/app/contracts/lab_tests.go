package contracts

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
)

type LabTestUsecase interface {
	CreateTemplate(ctx context.Context, request *requests.CreateLabTestTemplate) (*responses.LabTestTemplate, error)
	GetTemplates(ctx context.Context) ([]responses.LabTestTemplate, error)
	GetRequests(ctx context.Context, session *models.Session) ([]responses.LabTestRequest, error)
	UpdateRequestStatus(ctx context.Context, session *models.Session, requestID string, request *requests.UpdateLabTestStatus) (*responses.LabTestRequest, error)
	SubmitResult(ctx context.Context, session *models.Session, requestID string, request *requests.SubmitLabTestResult) (*responses.LabTestResult, error)
}

type LabTestTemplateRepository interface {
	CreateTemplate(ctx context.Context, template *models.LabTestTemplate) (string, error)
	FindByID(ctx context.Context, templateID string) (*models.LabTestTemplate, error)
	FindAll(ctx context.Context) ([]models.LabTestTemplate, error)
}

type LabTestRequestRepository interface {
	CreateRequest(ctx context.Context, request *models.LabTestRequest) (string, error)
	FindByID(ctx context.Context, requestID string) (*models.LabTestRequest, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.LabTestRequest, error)
	FindByConsultationID(ctx context.Context, consultationID string) ([]models.LabTestRequest, error)
	FindByConsultationAndTemplate(ctx context.Context, consultationID, templateID string) (*models.LabTestRequest, error)
	FindAll(ctx context.Context) ([]models.LabTestRequest, error)
	UpdateRequest(ctx context.Context, request *models.LabTestRequest) error
}

type LabTestResultRepository interface {
	CreateResult(ctx context.Context, result *models.LabTestResult) (string, error)
	FindByRequestID(ctx context.Context, requestID string) (*models.LabTestResult, error)
}
