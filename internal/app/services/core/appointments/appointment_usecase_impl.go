package appointments

import (
	"context"
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/app/services/core/payments"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	DoctorRepository       contracts.DoctorRepository
	UserRepository         contracts.UserRepository
	InsuranceRepository    contracts.InsuranceRepository
	PaymentRepository      contracts.PaymentRepository
	SlotService            contracts.SlotUsecase
	LockService            contracts.LockerService
	NotificationDispatcher contracts.NotificationDispatcher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	insuranceRepository contracts.InsuranceRepository,
	paymentRepository contracts.PaymentRepository,
	slotService contracts.SlotUsecase,
	lockService contracts.LockerService,
	notificationDispatcher contracts.NotificationDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			DoctorRepository:       doctorRepository,
			UserRepository:         userRepository,
			InsuranceRepository:    insuranceRepository,
			PaymentRepository:      paymentRepository,
			SlotService:            slotService,
			LockService:            lockService,
			NotificationDispatcher: notificationDispatcher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.InsuranceID != "" {
		insurance, err := uc.InsuranceRepository.FindByID(ctx, request.InsuranceID)
		if err != nil {
			return nil, err
		}
		if insurance == nil {
			return nil, exceptions.ErrRecordNotFound(nil)
		}
	}

	// The lock serializes bookings per patient so two concurrent requests
	// cannot both pass the active appointment check.
	lockKey := constvars.RedisAppointmentLockKeyPrefix + session.UserID
	lockExpiration := time.Duration(uc.InternalConfig.Appointment.LockExpirationInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrActiveAppointmentExists(nil)
	}
	defer uc.LockService.Unlock(ctx, lockKey, lockValue)

	activeCount, err := uc.AppointmentRepository.CountActiveByPatientID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if activeCount > 0 {
		uc.Log.Info("appointmentUsecase.CreateAppointment patient already has an active appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, session.UserID),
		)
		return nil, exceptions.ErrActiveAppointmentExists(nil)
	}

	availableSlots, err := uc.SlotService.GetAvailableSlots(ctx, &requests.GetAvailableSlots{
		DoctorID: request.DoctorID,
		Date:     request.Date,
	})
	if err != nil {
		return nil, err
	}
	if !containsSlot(availableSlots.Slots, request.SlotTime) {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	appointment := &models.Appointment{
		PatientID:       session.UserID,
		DoctorID:        doctor.ID,
		HospitalID:      doctor.HospitalID,
		DepartmentID:    doctor.DepartmentID,
		InsuranceID:     request.InsuranceID,
		Date:            request.Date,
		SlotTime:        request.SlotTime,
		Status:          constvars.AppointmentStatusPending,
		ConsultationFee: doctor.ConsultationFee,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.notify(ctx, doctor.UserID, constvars.NotificationTypeAppointment, "New appointment request",
		session.FullName+" requested an appointment on "+request.Date+" at "+request.SlotTime, appointmentID)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	var appointments []models.Appointment
	var err error
	switch session.Role {
	case constvars.RolePatient:
		appointments, err = uc.AppointmentRepository.FindByPatientID(ctx, session.UserID)
	case constvars.RoleDoctor:
		doctor, doctorErr := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
		if doctorErr != nil {
			return nil, doctorErr
		}
		if doctor == nil {
			return nil, exceptions.ErrRecordNotFound(nil)
		}
		appointments, err = uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	default:
		appointments, err = uc.AppointmentRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		appointmentResponse, err := uc.buildAppointmentResponse(ctx, &appointments[i])
		if err != nil {
			return nil, err
		}
		response = append(response, *appointmentResponse)
	}
	return response, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if session.Role == constvars.RolePatient && appointment.PatientID != session.UserID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) ApproveAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.ApproveAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ApproveAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if appointment.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrAppointmentNotActionable(nil)
	}

	if request.Weight <= constvars.VitalsWeightMin || request.Weight > constvars.VitalsWeightMax {
		return nil, exceptions.ErrInvalidWeight(nil)
	}
	if request.Temperature < constvars.VitalsTemperatureMin || request.Temperature > constvars.VitalsTemperatureMax {
		return nil, exceptions.ErrInvalidTemperature(nil)
	}

	// Status and vitals change in one update so an approved appointment can
	// never exist without its vitals.
	appointment.Status = constvars.AppointmentStatusApproved
	appointment.Vitals = &models.Vitals{
		Weight:        request.Weight,
		Temperature:   request.Temperature,
		BloodPressure: request.BloodPressure,
		Notes:         request.Notes,
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.ApproveAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notify(ctx, appointment.PatientID, constvars.NotificationTypeAppointment, "Appointment approved",
		"Your appointment on "+appointment.Date+" at "+appointment.SlotTime+" was approved", appointment.ID)

	uc.Log.Info("appointmentUsecase.ApproveAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) RejectAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RejectAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if appointment.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrAppointmentNotActionable(nil)
	}

	appointment.Status = constvars.AppointmentStatusRejected
	appointment.RejectionReason = request.Reason

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.notify(ctx, appointment.PatientID, constvars.NotificationTypeAppointment, "Appointment rejected",
		"Your appointment on "+appointment.Date+" was rejected: "+request.Reason, appointment.ID)

	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	response := &responses.Appointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		HospitalID:      appointment.HospitalID,
		DepartmentID:    appointment.DepartmentID,
		InsuranceID:     appointment.InsuranceID,
		Date:            appointment.Date,
		SlotTime:        appointment.SlotTime,
		Status:          appointment.Status,
		ConsultationFee: appointment.ConsultationFee,
		RejectionReason: appointment.RejectionReason,
		Vitals:          appointment.Vitals,
	}

	patient, err := uc.UserRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		response.PatientName = patient.FullName
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		doctorUser, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
		if err != nil {
			return nil, err
		}
		if doctorUser != nil {
			response.DoctorName = doctorUser.FullName
		}
	}

	paymentList, err := uc.PaymentRepository.FindByTypeAndReference(ctx, constvars.PaymentTypeConsultation, appointment.ID)
	if err != nil {
		return nil, err
	}
	response.HasPaid = payments.HasPaid(paymentList)

	return response, nil
}

func (uc *appointmentUsecase) notify(ctx context.Context, userID, notificationType, title, message, referenceID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	notification := &models.Notification{
		UserID:      userID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := uc.NotificationDispatcher.Dispatch(ctx, notification); err != nil {
		uc.Log.Error("appointmentUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
