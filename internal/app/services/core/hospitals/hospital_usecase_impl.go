package hospitals

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
	hospitalUsecaseInstance contracts.HospitalUsecase
	onceHospitalUsecase     sync.Once
)

type hospitalUsecase struct {
	HospitalRepository           contracts.HospitalRepository
	DepartmentRepository         contracts.DepartmentRepository
	HospitalDepartmentRepository contracts.HospitalDepartmentRepository
	Log                          *zap.Logger
}

func NewHospitalUsecase(
	hospitalRepository contracts.HospitalRepository,
	departmentRepository contracts.DepartmentRepository,
	hospitalDepartmentRepository contracts.HospitalDepartmentRepository,
	logger *zap.Logger,
) contracts.HospitalUsecase {
	onceHospitalUsecase.Do(func() {
		hospitalUsecaseInstance = &hospitalUsecase{
			HospitalRepository:           hospitalRepository,
			DepartmentRepository:         departmentRepository,
			HospitalDepartmentRepository: hospitalDepartmentRepository,
			Log:                          logger,
		}
	})
	return hospitalUsecaseInstance
}

func (uc *hospitalUsecase) CreateHospital(ctx context.Context, request *requests.CreateHospital) (*responses.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.CreateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hospital := &models.Hospital{
		Name:    request.Name,
		Address: request.Address,
		Phone:   request.Phone,
	}
	hospital.SetCreatedAtUpdatedAt()

	hospitalID, err := uc.HospitalRepository.CreateHospital(ctx, hospital)
	if err != nil {
		return nil, err
	}
	hospital.ID = hospitalID

	return buildHospitalResponse(hospital), nil
}

func (uc *hospitalUsecase) GetHospitals(ctx context.Context) ([]responses.Hospital, error) {
	hospitals, err := uc.HospitalRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	hospitalResponses := make([]responses.Hospital, 0, len(hospitals))
	for _, hospital := range hospitals {
		hospitalResponses = append(hospitalResponses, *buildHospitalResponse(&hospital))
	}
	return hospitalResponses, nil
}

func (uc *hospitalUsecase) GetHospitalByID(ctx context.Context, hospitalID string) (*responses.Hospital, error) {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildHospitalResponse(hospital), nil
}

func (uc *hospitalUsecase) UpdateHospital(ctx context.Context, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.UpdateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		hospital.Name = request.Name
	}
	if request.Address != "" {
		hospital.Address = request.Address
	}
	if request.Phone != "" {
		hospital.Phone = request.Phone
	}

	if err := uc.HospitalRepository.UpdateHospital(ctx, hospital); err != nil {
		return nil, err
	}
	return buildHospitalResponse(hospital), nil
}

func (uc *hospitalUsecase) DeleteHospital(ctx context.Context, hospitalID string) error {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.HospitalRepository.DeleteByID(ctx, hospitalID)
}

func (uc *hospitalUsecase) AssignDepartment(ctx context.Context, hospitalID string, request *requests.AssignDepartment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.AssignDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, request.DepartmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	existing, err := uc.HospitalDepartmentRepository.FindByHospitalAndDepartment(ctx, hospitalID, request.DepartmentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrDuplicateAssignment(nil)
	}

	assignment := &models.HospitalDepartment{
		HospitalID:   hospitalID,
		DepartmentID: request.DepartmentID,
	}
	assignment.SetCreatedAtUpdatedAt()

	_, err = uc.HospitalDepartmentRepository.CreateAssignment(ctx, assignment)
	return err
}

func (uc *hospitalUsecase) GetHospitalDepartments(ctx context.Context, hospitalID string) ([]responses.Department, error) {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	assignments, err := uc.HospitalDepartmentRepository.FindByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	departmentResponses := make([]responses.Department, 0, len(assignments))
	for _, assignment := range assignments {
		department, err := uc.DepartmentRepository.FindByID(ctx, assignment.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			continue
		}
		departmentResponses = append(departmentResponses, responses.Department{
			ID:          department.ID,
			Name:        department.Name,
			Description: department.Description,
		})
	}
	return departmentResponses, nil
}

func buildHospitalResponse(hospital *models.Hospital) *responses.Hospital {
	return &responses.Hospital{
		ID:      hospital.ID,
		Name:    hospital.Name,
		Address: hospital.Address,
		Phone:   hospital.Phone,
	}
}
