package consultations

import (
	"context"
	"fmt"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/app/services/core/payments"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

type consultationUsecase struct {
	ConsultationRepository    contracts.ConsultationRepository
	AppointmentRepository     contracts.AppointmentRepository
	DoctorRepository          contracts.DoctorRepository
	LabTestTemplateRepository contracts.LabTestTemplateRepository
	LabTestRequestRepository  contracts.LabTestRequestRepository
	PaymentRepository         contracts.PaymentRepository
	NotificationDispatcher    contracts.NotificationDispatcher
	Log                       *zap.Logger
}

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	labTestTemplateRepository contracts.LabTestTemplateRepository,
	labTestRequestRepository contracts.LabTestRequestRepository,
	paymentRepository contracts.PaymentRepository,
	notificationDispatcher contracts.NotificationDispatcher,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		consultationUsecaseInstance = &consultationUsecase{
			ConsultationRepository:    consultationRepository,
			AppointmentRepository:     appointmentRepository,
			DoctorRepository:          doctorRepository,
			LabTestTemplateRepository: labTestTemplateRepository,
			LabTestRequestRepository:  labTestRequestRepository,
			PaymentRepository:         paymentRepository,
			NotificationDispatcher:    notificationDispatcher,
			Log:                       logger,
		}
	})
	return consultationUsecaseInstance
}

func (uc *consultationUsecase) SaveConsultation(ctx context.Context, session *models.Session, request *requests.SaveConsultation) (*responses.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.SaveConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if strings.TrimSpace(request.Diagnosis) == "" {
		return nil, exceptions.ErrDiagnosisRequired(nil)
	}

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if appointment.DoctorID != doctor.ID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	if appointment.Status != constvars.AppointmentStatusApproved &&
		appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrAppointmentNotActionable(nil)
	}

	// Consultation recording is gated on a completed consultation payment.
	paymentList, err := uc.PaymentRepository.FindByTypeAndReference(ctx, constvars.PaymentTypeConsultation, appointment.ID)
	if err != nil {
		return nil, err
	}
	if !payments.HasPaid(paymentList) {
		uc.Log.Info("consultationUsecase.SaveConsultation blocked, consultation not paid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return nil, exceptions.ErrConsultationNotPaid(nil)
	}

	consultation, err := uc.ConsultationRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		consultation = &models.Consultation{
			AppointmentID:        appointment.ID,
			PatientID:            appointment.PatientID,
			DoctorID:             doctor.ID,
			Diagnosis:            request.Diagnosis,
			Notes:                request.Notes,
			RequiresLabTest:      request.RequiresLabTest,
			RequiresPrescription: request.RequiresPrescription,
		}
		consultation.SetCreatedAtUpdatedAt()

		consultationID, err := uc.ConsultationRepository.CreateConsultation(ctx, consultation)
		if err != nil {
			return nil, err
		}
		consultation.ID = consultationID
	} else {
		consultation.Diagnosis = request.Diagnosis
		consultation.Notes = request.Notes
		consultation.RequiresLabTest = request.RequiresLabTest
		consultation.RequiresPrescription = request.RequiresPrescription
		if err := uc.ConsultationRepository.UpdateConsultation(ctx, consultation); err != nil {
			return nil, err
		}
	}

	templateIDs := request.LabTestTemplateIDs
	if !request.RequiresLabTest {
		templateIDs = nil
	}
	labRequests, created, err := uc.spawnLabRequests(ctx, consultation, appointment, templateIDs)
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		newTestsTotal := 0.0
		for _, labRequest := range created {
			newTestsTotal += labRequest.TotalPrice
		}
		uc.notify(ctx, appointment.PatientID, constvars.NotificationTypeLabTest, "Lab tests required",
			fmt.Sprintf("Doctor has prescribed %d lab test(s). Total: %s RWF. Please proceed with payment.",
				len(created), strconv.FormatFloat(newTestsTotal, 'f', -1, 64)),
			consultation.ID)
	}

	if appointment.Status == constvars.AppointmentStatusApproved {
		appointment.Status = constvars.AppointmentStatusCompleted
		if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
			return nil, err
		}

		completionMessage := strings.TrimSpace(request.Notes)
		if completionMessage == "" {
			completionMessage = "Your consultation has been completed."
		}
		uc.notify(ctx, appointment.PatientID, constvars.NotificationTypeConsultation,
			"Consultation completed", completionMessage, appointment.ID)
	}

	uc.Log.Info("consultationUsecase.SaveConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultation.ID),
	)
	return uc.buildConsultationResponse(consultation, labRequests), nil
}

func (uc *consultationUsecase) GetConsultationByAppointmentID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.GetConsultationByAppointmentID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	consultation, err := uc.ConsultationRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if session.Role == constvars.RolePatient && consultation.PatientID != session.UserID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	labRequests, err := uc.LabTestRequestRepository.FindByConsultationID(ctx, consultation.ID)
	if err != nil {
		return nil, err
	}
	return uc.buildConsultationResponse(consultation, labRequests), nil
}

// spawnLabRequests creates one request per template, skipping templates that
// already have a request for this consultation so re-saving never duplicates.
// It returns the full request list plus the requests created by this call.
func (uc *consultationUsecase) spawnLabRequests(ctx context.Context, consultation *models.Consultation, appointment *models.Appointment, templateIDs []string) ([]models.LabTestRequest, []models.LabTestRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	created := []models.LabTestRequest{}
	for _, templateID := range templateIDs {
		existing, err := uc.LabTestRequestRepository.FindByConsultationAndTemplate(ctx, consultation.ID, templateID)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			continue
		}

		template, err := uc.LabTestTemplateRepository.FindByID(ctx, templateID)
		if err != nil {
			return nil, nil, err
		}
		if template == nil {
			return nil, nil, exceptions.ErrRecordNotFound(nil)
		}

		labRequest := &models.LabTestRequest{
			ConsultationID: consultation.ID,
			AppointmentID:  appointment.ID,
			PatientID:      appointment.PatientID,
			TemplateID:     template.ID,
			TemplateName:   template.Name,
			Status:         constvars.LabTestStatusAwaitingPayment,
			TotalPrice:     template.Price,
		}
		labRequest.SetCreatedAtUpdatedAt()

		labRequestID, err := uc.LabTestRequestRepository.CreateRequest(ctx, labRequest)
		if err != nil {
			return nil, nil, err
		}
		labRequest.ID = labRequestID
		created = append(created, *labRequest)
		uc.Log.Info("consultationUsecase.spawnLabRequests created lab request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLabTestRequestKey, labRequestID),
		)
	}

	labRequests, err := uc.LabTestRequestRepository.FindByConsultationID(ctx, consultation.ID)
	if err != nil {
		return nil, nil, err
	}
	return labRequests, created, nil
}

func (uc *consultationUsecase) buildConsultationResponse(consultation *models.Consultation, labRequests []models.LabTestRequest) *responses.Consultation {
	response := &responses.Consultation{
		ID:                   consultation.ID,
		AppointmentID:        consultation.AppointmentID,
		PatientID:            consultation.PatientID,
		DoctorID:             consultation.DoctorID,
		Diagnosis:            consultation.Diagnosis,
		Notes:                consultation.Notes,
		RequiresLabTest:      consultation.RequiresLabTest,
		RequiresPrescription: consultation.RequiresPrescription,
	}
	for _, labRequest := range labRequests {
		response.LabTestRequests = append(response.LabTestRequests, responses.LabTestRequest{
			ID:             labRequest.ID,
			ConsultationID: labRequest.ConsultationID,
			AppointmentID:  labRequest.AppointmentID,
			PatientID:      labRequest.PatientID,
			TemplateID:     labRequest.TemplateID,
			TemplateName:   labRequest.TemplateName,
			Status:         labRequest.Status,
			TotalPrice:     labRequest.TotalPrice,
			TechnicianID:   labRequest.TechnicianID,
		})
	}
	return response
}

func (uc *consultationUsecase) notify(ctx context.Context, userID, notificationType, title, message, referenceID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	notification := &models.Notification{
		UserID:      userID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := uc.NotificationDispatcher.Dispatch(ctx, notification); err != nil {
		uc.Log.Error("consultationUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
