package payments

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
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	PaymentRepository        contracts.PaymentRepository
	AppointmentRepository    contracts.AppointmentRepository
	LabTestRequestRepository contracts.LabTestRequestRepository
	PrescriptionRepository   contracts.PrescriptionRepository
	InsuranceRepository      contracts.InsuranceRepository
	NotificationDispatcher   contracts.NotificationDispatcher
	Log                      *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	labTestRequestRepository contracts.LabTestRequestRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	insuranceRepository contracts.InsuranceRepository,
	notificationDispatcher contracts.NotificationDispatcher,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentRepository:        paymentRepository,
			AppointmentRepository:    appointmentRepository,
			LabTestRequestRepository: labTestRequestRepository,
			PrescriptionRepository:   prescriptionRepository,
			InsuranceRepository:      insuranceRepository,
			NotificationDispatcher:   notificationDispatcher,
			Log:                      logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentTypeKey, request.Type),
		zap.String(constvars.LoggingReferenceIDKey, request.ReferenceID),
	)

	existing, err := uc.PaymentRepository.FindByTypeAndReference(ctx, request.Type, request.ReferenceID)
	if err != nil {
		return nil, err
	}
	if HasPaid(existing) {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	amount, err := uc.resolveAmount(ctx, session, request.Type, request.ReferenceID)
	if err != nil {
		return nil, err
	}

	coveragePercentage := 0.0
	if request.InsuranceID != "" {
		insurance, err := uc.InsuranceRepository.FindByID(ctx, request.InsuranceID)
		if err != nil {
			return nil, err
		}
		if insurance == nil {
			return nil, exceptions.ErrRecordNotFound(nil)
		}
		coveragePercentage = insurance.CoveragePercentage
	}

	transactionID, err := utils.GenerateTransactionID()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	// The gateway is out of band here, a created payment settles
	// immediately.
	payment := &models.Payment{
		TransactionID:  transactionID,
		PatientID:      session.UserID,
		Type:           request.Type,
		ReferenceID:    request.ReferenceID,
		Method:         request.Method,
		Amount:         amount,
		InsuranceID:    request.InsuranceID,
		CoverageAmount: CoverageAmount(amount, coveragePercentage),
		PatientPays:    PatientPays(amount, coveragePercentage),
		Currency:       constvars.CurrencyRwandanFranc,
		Status:         constvars.PaymentStatusCompleted,
	}
	payment.SetCreatedAtUpdatedAt()

	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = paymentID

	if err := uc.advanceReference(ctx, request.Type, request.ReferenceID); err != nil {
		return nil, err
	}

	uc.notify(ctx, session.UserID, "Payment received",
		"Your "+request.Type+" payment "+payment.TransactionID+" was processed", payment.ID)

	uc.Log.Info("paymentUsecase.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
	)
	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) GetPayments(ctx context.Context, session *models.Session) ([]responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.GetPayments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	var paymentList []models.Payment
	var err error
	if session.Role == constvars.RolePatient {
		paymentList, err = uc.PaymentRepository.FindByPatientID(ctx, session.UserID)
	} else {
		paymentList, err = uc.PaymentRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	paymentResponses := make([]responses.Payment, 0, len(paymentList))
	for _, payment := range paymentList {
		paymentResponses = append(paymentResponses, *buildPaymentResponse(&payment))
	}
	return paymentResponses, nil
}

func (uc *paymentUsecase) HasCompletedPayment(ctx context.Context, paymentType, referenceID string) (bool, error) {
	paymentList, err := uc.PaymentRepository.FindByTypeAndReference(ctx, paymentType, referenceID)
	if err != nil {
		return false, err
	}
	return HasPaid(paymentList), nil
}

// resolveAmount derives the charge from the referenced record so the
// client never supplies its own price.
func (uc *paymentUsecase) resolveAmount(ctx context.Context, session *models.Session, paymentType, referenceID string) (float64, error) {
	switch paymentType {
	case constvars.PaymentTypeConsultation:
		appointment, err := uc.AppointmentRepository.FindByID(ctx, referenceID)
		if err != nil {
			return 0, err
		}
		if appointment == nil {
			return 0, exceptions.ErrRecordNotFound(nil)
		}
		if appointment.PatientID != session.UserID {
			return 0, exceptions.ErrNotMatchRoleType(nil)
		}
		if appointment.Status != constvars.AppointmentStatusApproved {
			return 0, exceptions.ErrAppointmentNotActionable(nil)
		}
		// Charge the fee snapshot taken at booking time, not the doctor's
		// current fee.
		return appointment.ConsultationFee, nil

	case constvars.PaymentTypeLabTest:
		labRequest, err := uc.LabTestRequestRepository.FindByID(ctx, referenceID)
		if err != nil {
			return 0, err
		}
		if labRequest == nil {
			return 0, exceptions.ErrRecordNotFound(nil)
		}
		if labRequest.PatientID != session.UserID {
			return 0, exceptions.ErrNotMatchRoleType(nil)
		}
		if labRequest.Status != constvars.LabTestStatusAwaitingPayment {
			return 0, exceptions.ErrInvalidStatusTransition(nil)
		}
		return labRequest.TotalPrice, nil

	case constvars.PaymentTypeMedication:
		prescription, err := uc.PrescriptionRepository.FindByID(ctx, referenceID)
		if err != nil {
			return 0, err
		}
		if prescription == nil {
			return 0, exceptions.ErrRecordNotFound(nil)
		}
		if prescription.PatientID != session.UserID {
			return 0, exceptions.ErrNotMatchRoleType(nil)
		}
		if prescription.Status != constvars.PrescriptionStatusApproved {
			return 0, exceptions.ErrPrescriptionNotApproved(nil)
		}
		return prescription.TotalPrice, nil
	}
	return 0, exceptions.ErrServerProcess(nil)
}

// advanceReference moves the paid record into the state the rest of the
// flow gates on.
func (uc *paymentUsecase) advanceReference(ctx context.Context, paymentType, referenceID string) error {
	switch paymentType {
	case constvars.PaymentTypeLabTest:
		labRequest, err := uc.LabTestRequestRepository.FindByID(ctx, referenceID)
		if err != nil {
			return err
		}
		if labRequest == nil {
			return exceptions.ErrRecordNotFound(nil)
		}
		labRequest.Status = constvars.LabTestStatusPending
		return uc.LabTestRequestRepository.UpdateRequest(ctx, labRequest)

	case constvars.PaymentTypeMedication:
		prescription, err := uc.PrescriptionRepository.FindByID(ctx, referenceID)
		if err != nil {
			return err
		}
		if prescription == nil {
			return exceptions.ErrRecordNotFound(nil)
		}
		prescription.Status = constvars.PrescriptionStatusPaid
		return uc.PrescriptionRepository.UpdatePrescription(ctx, prescription)
	}
	return nil
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	return &responses.Payment{
		ID:             payment.ID,
		TransactionID:  payment.TransactionID,
		PatientID:      payment.PatientID,
		Type:           payment.Type,
		ReferenceID:    payment.ReferenceID,
		Method:         payment.Method,
		Amount:         payment.Amount,
		InsuranceID:    payment.InsuranceID,
		CoverageAmount: payment.CoverageAmount,
		PatientPays:    payment.PatientPays,
		Currency:       payment.Currency,
		Status:         payment.Status,
	}
}

func (uc *paymentUsecase) notify(ctx context.Context, userID, title, message, referenceID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	notification := &models.Notification{
		UserID:      userID,
		Type:        constvars.NotificationTypePayment,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := uc.NotificationDispatcher.Dispatch(ctx, notification); err != nil {
		uc.Log.Error("paymentUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
