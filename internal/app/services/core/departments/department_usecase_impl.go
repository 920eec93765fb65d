package departments

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	departmentUsecaseInstance contracts.DepartmentUsecase
	onceDepartmentUsecase     sync.Once
)

type departmentUsecase struct {
	DepartmentRepository contracts.DepartmentRepository
	Log                  *zap.Logger
}

func NewDepartmentUsecase(
	departmentRepository contracts.DepartmentRepository,
	logger *zap.Logger,
) contracts.DepartmentUsecase {
	onceDepartmentUsecase.Do(func() {
		departmentUsecaseInstance = &departmentUsecase{
			DepartmentRepository: departmentRepository,
			Log:                  logger,
		}
	})
	return departmentUsecaseInstance
}

func (uc *departmentUsecase) CreateDepartment(ctx context.Context, request *requests.CreateDepartment) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.CreateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	department := &models.Department{
		Name:        request.Name,
		Description: request.Description,
	}
	department.SetCreatedAtUpdatedAt()

	departmentID, err := uc.DepartmentRepository.CreateDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	department.ID = departmentID

	return buildDepartmentResponse(department), nil
}

func (uc *departmentUsecase) GetDepartments(ctx context.Context) ([]responses.Department, error) {
	departments, err := uc.DepartmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	departmentResponses := make([]responses.Department, 0, len(departments))
	for _, department := range departments {
		departmentResponses = append(departmentResponses, *buildDepartmentResponse(&department))
	}
	return departmentResponses, nil
}

func (uc *departmentUsecase) GetDepartmentByID(ctx context.Context, departmentID string) (*responses.Department, error) {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildDepartmentResponse(department), nil
}

func (uc *departmentUsecase) UpdateDepartment(ctx context.Context, departmentID string, request *requests.UpdateDepartment) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.UpdateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		department.Name = request.Name
	}
	if request.Description != "" {
		department.Description = request.Description
	}

	if err := uc.DepartmentRepository.UpdateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return buildDepartmentResponse(department), nil
}

func (uc *departmentUsecase) DeleteDepartment(ctx context.Context, departmentID string) error {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.DepartmentRepository.DeleteByID(ctx, departmentID)
}

func buildDepartmentResponse(department *models.Department) *responses.Department {
	return &responses.Department{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}
