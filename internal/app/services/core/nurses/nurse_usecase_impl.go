package nurses

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
	nurseUsecaseInstance contracts.NurseUsecase
	onceNurseUsecase     sync.Once
)

type nurseUsecase struct {
	NurseRepository              contracts.NurseRepository
	UserRepository               contracts.UserRepository
	HospitalRepository           contracts.HospitalRepository
	HospitalDepartmentRepository contracts.HospitalDepartmentRepository
	Log                          *zap.Logger
}

func NewNurseUsecase(
	nurseRepository contracts.NurseRepository,
	userRepository contracts.UserRepository,
	hospitalRepository contracts.HospitalRepository,
	hospitalDepartmentRepository contracts.HospitalDepartmentRepository,
	logger *zap.Logger,
) contracts.NurseUsecase {
	onceNurseUsecase.Do(func() {
		nurseUsecaseInstance = &nurseUsecase{
			NurseRepository:              nurseRepository,
			UserRepository:               userRepository,
			HospitalRepository:           hospitalRepository,
			HospitalDepartmentRepository: hospitalDepartmentRepository,
			Log:                          logger,
		}
	})
	return nurseUsecaseInstance
}

func (uc *nurseUsecase) CreateNurse(ctx context.Context, request *requests.CreateNurse) (*responses.Nurse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nurseUsecase.CreateNurse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if user.Role != constvars.RoleNurse {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	existing, err := uc.NurseRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDuplicateAssignment(nil)
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, request.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	assignment, err := uc.HospitalDepartmentRepository.FindByHospitalAndDepartment(ctx, request.HospitalID, request.DepartmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	nurse := &models.Nurse{
		UserID:       request.UserID,
		HospitalID:   request.HospitalID,
		DepartmentID: request.DepartmentID,
	}
	nurse.SetCreatedAtUpdatedAt()

	nurseID, err := uc.NurseRepository.CreateNurse(ctx, nurse)
	if err != nil {
		return nil, err
	}
	nurse.ID = nurseID

	return uc.buildNurseResponse(ctx, nurse)
}

func (uc *nurseUsecase) GetNurses(ctx context.Context) ([]responses.Nurse, error) {
	nurseList, err := uc.NurseRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	nurseResponses := make([]responses.Nurse, 0, len(nurseList))
	for _, nurse := range nurseList {
		response, err := uc.buildNurseResponse(ctx, &nurse)
		if err != nil {
			return nil, err
		}
		nurseResponses = append(nurseResponses, *response)
	}
	return nurseResponses, nil
}

func (uc *nurseUsecase) DeleteNurse(ctx context.Context, nurseID string) error {
	nurse, err := uc.NurseRepository.FindByID(ctx, nurseID)
	if err != nil {
		return err
	}
	if nurse == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.NurseRepository.DeleteByID(ctx, nurseID)
}

func (uc *nurseUsecase) buildNurseResponse(ctx context.Context, nurse *models.Nurse) (*responses.Nurse, error) {
	response := &responses.Nurse{
		ID:           nurse.ID,
		UserID:       nurse.UserID,
		HospitalID:   nurse.HospitalID,
		DepartmentID: nurse.DepartmentID,
	}

	user, err := uc.UserRepository.FindByID(ctx, nurse.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		response.FullName = user.FullName
	}
	return response, nil
}
