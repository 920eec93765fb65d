package doctors

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"medipass-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository             contracts.DoctorRepository
	UserRepository               contracts.UserRepository
	HospitalRepository           contracts.HospitalRepository
	HospitalDepartmentRepository contracts.HospitalDepartmentRepository
	Log                          *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	hospitalRepository contracts.HospitalRepository,
	hospitalDepartmentRepository contracts.HospitalDepartmentRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:             doctorRepository,
			UserRepository:               userRepository,
			HospitalRepository:           hospitalRepository,
			HospitalDepartmentRepository: hospitalDepartmentRepository,
			Log:                          logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
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
	if user.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	existing, err := uc.DoctorRepository.FindByUserID(ctx, request.UserID)
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

	doctor := &models.Doctor{
		UserID:              request.UserID,
		HospitalID:          request.HospitalID,
		DepartmentID:        request.DepartmentID,
		Specialty:           request.Specialty,
		ConsultationFee:     request.ConsultationFee,
		WorkDays:            request.WorkDays,
		StartTime:           utils.NormalizeTimeHHMM(request.StartTime),
		EndTime:             utils.NormalizeTimeHHMM(request.EndTime),
		SlotDurationMinutes: request.SlotDurationMinutes,
	}
	doctor.SetCreatedAtUpdatedAt()

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID

	return uc.buildDoctorResponse(ctx, doctor)
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context, departmentID string) ([]responses.Doctor, error) {
	var doctorList []models.Doctor
	var err error
	if departmentID != "" {
		doctorList, err = uc.DoctorRepository.FindByDepartmentID(ctx, departmentID)
	} else {
		doctorList, err = uc.DoctorRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	doctorResponses := make([]responses.Doctor, 0, len(doctorList))
	for _, doctor := range doctorList {
		response, err := uc.buildDoctorResponse(ctx, &doctor)
		if err != nil {
			return nil, err
		}
		doctorResponses = append(doctorResponses, *response)
	}
	return doctorResponses, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return uc.buildDoctorResponse(ctx, doctor)
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Specialty != "" {
		doctor.Specialty = request.Specialty
	}
	if request.ConsultationFee != nil {
		doctor.ConsultationFee = *request.ConsultationFee
	}
	if len(request.WorkDays) > 0 {
		doctor.WorkDays = request.WorkDays
	}
	if request.StartTime != "" {
		doctor.StartTime = utils.NormalizeTimeHHMM(request.StartTime)
	}
	if request.EndTime != "" {
		doctor.EndTime = utils.NormalizeTimeHHMM(request.EndTime)
	}
	if request.SlotDurationMinutes != nil {
		doctor.SlotDurationMinutes = *request.SlotDurationMinutes
	}

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return uc.buildDoctorResponse(ctx, doctor)
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) (*responses.Doctor, error) {
	response := &responses.Doctor{
		ID:                  doctor.ID,
		UserID:              doctor.UserID,
		HospitalID:          doctor.HospitalID,
		DepartmentID:        doctor.DepartmentID,
		Specialty:           doctor.Specialty,
		ConsultationFee:     doctor.ConsultationFee,
		WorkDays:            doctor.WorkDays,
		StartTime:           doctor.StartTime,
		EndTime:             doctor.EndTime,
		SlotDurationMinutes: doctor.SlotDurationMinutes,
	}

	user, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		response.FullName = user.FullName
	}
	return response, nil
}
