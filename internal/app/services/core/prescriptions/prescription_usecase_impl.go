package prescriptions

import (
	"context"
	"encoding/base64"
	"fmt"
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"medipass-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

const defaultSignatureExtension = ".png"

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	ConsultationRepository contracts.ConsultationRepository
	DoctorRepository       contracts.DoctorRepository
	PharmacyRepository     contracts.PharmacyRepository
	MedicationRepository   contracts.MedicationRepository
	UserRepository         contracts.UserRepository
	Storage                contracts.Storage
	NotificationDispatcher contracts.NotificationDispatcher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	consultationRepository contracts.ConsultationRepository,
	doctorRepository contracts.DoctorRepository,
	pharmacyRepository contracts.PharmacyRepository,
	medicationRepository contracts.MedicationRepository,
	userRepository contracts.UserRepository,
	storage contracts.Storage,
	notificationDispatcher contracts.NotificationDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			ConsultationRepository: consultationRepository,
			DoctorRepository:       doctorRepository,
			PharmacyRepository:     pharmacyRepository,
			MedicationRepository:   medicationRepository,
			UserRepository:         userRepository,
			Storage:                storage,
			NotificationDispatcher: notificationDispatcher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if len(request.Items) == 0 {
		return nil, exceptions.ErrEmptyPrescription(nil)
	}
	if strings.TrimSpace(request.SignatureData) == "" {
		return nil, exceptions.ErrSignatureRequired(nil)
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

	consultation, err := uc.ConsultationRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	pharmacy, err := uc.PharmacyRepository.FindByID(ctx, request.PharmacyID)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	// Each medication line becomes its own prescription so review,
	// payment and dispensing run per medication. All lines are resolved
	// before the first insert so a bad line rejects the whole batch.
	prescriptionList := make([]*models.Prescription, 0, len(request.Items))
	for _, line := range request.Items {
		if strings.TrimSpace(line.Dosage) == "" {
			return nil, exceptions.ErrDosageRequired(nil)
		}
		medication, err := uc.MedicationRepository.FindByID(ctx, line.MedicationID)
		if err != nil {
			return nil, err
		}
		if medication == nil {
			return nil, exceptions.ErrRecordNotFound(nil)
		}
		prescriptionList = append(prescriptionList, &models.Prescription{
			ConsultationID: consultation.ID,
			AppointmentID:  appointment.ID,
			PatientID:      appointment.PatientID,
			DoctorID:       doctor.ID,
			PharmacyID:     pharmacy.ID,
			MedicationID:   medication.ID,
			MedicationName: medication.Name,
			Dosage:         line.Dosage,
			Instructions:   line.Instructions,
			Quantity:       line.Quantity,
			Status:         constvars.PrescriptionStatusPending,
		})
	}

	signatureObjectKey, err := uc.uploadSignature(ctx, doctor.UserID, request.SignatureData, request.SignatureExtension)
	if err != nil {
		return nil, err
	}

	prescriptionResponses := make([]responses.Prescription, 0, len(prescriptionList))
	for _, prescription := range prescriptionList {
		prescription.SignatureObjectKey = signatureObjectKey
		prescription.SetCreatedAtUpdatedAt()

		prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
		if err != nil {
			return nil, err
		}
		prescription.ID = prescriptionID

		response, err := uc.buildPrescriptionResponse(ctx, prescription)
		if err != nil {
			return nil, err
		}
		prescriptionResponses = append(prescriptionResponses, *response)
	}

	uc.notify(ctx, appointment.PatientID, "New prescriptions available",
		fmt.Sprintf("Your doctor has prescribed %d medication(s). Each medication has its own prescription.",
			len(prescriptionList)),
		prescriptionList[0].ID)

	uc.Log.Info("prescriptionUsecase.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPrescriptionCountKey, len(prescriptionList)),
	)
	return prescriptionResponses, nil
}

func (uc *prescriptionUsecase) GetPrescriptions(ctx context.Context, session *models.Session) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	var prescriptionList []models.Prescription
	var err error
	if session.Role == constvars.RolePatient {
		prescriptionList, err = uc.PrescriptionRepository.FindByPatientID(ctx, session.UserID)
	} else {
		prescriptionList, err = uc.PrescriptionRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	prescriptionResponses := make([]responses.Prescription, 0, len(prescriptionList))
	for _, prescription := range prescriptionList {
		response, err := uc.buildPrescriptionResponse(ctx, &prescription)
		if err != nil {
			return nil, err
		}
		prescriptionResponses = append(prescriptionResponses, *response)
	}
	return prescriptionResponses, nil
}

func (uc *prescriptionUsecase) GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.GetPrescriptionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if session.Role == constvars.RolePatient && prescription.PatientID != session.UserID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return uc.buildPrescriptionResponse(ctx, prescription)
}

func (uc *prescriptionUsecase) ReviewPrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.ReviewPrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.ReviewPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingStatusKey, request.Action),
	)

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if prescription.Status != constvars.PrescriptionStatusPending {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	switch request.Action {
	case "approve":
		// Pricing is fixed at review time so later stock or price edits
		// cannot change what the patient owes.
		medication, err := uc.MedicationRepository.FindByID(ctx, prescription.MedicationID)
		if err != nil {
			return nil, err
		}
		if medication == nil {
			return nil, exceptions.ErrRecordNotFound(nil)
		}
		prescription.UnitPrice = medication.UnitPrice
		prescription.TotalPrice = medication.UnitPrice * float64(prescription.Quantity)
		prescription.Status = constvars.PrescriptionStatusApproved
	case "reject":
		if strings.TrimSpace(request.Reason) == "" {
			return nil, exceptions.ErrRejectionReasonRequired(nil)
		}
		prescription.Status = constvars.PrescriptionStatusRejected
		prescription.RejectionReason = request.Reason
	}
	prescription.PharmacistID = session.UserID

	if err := uc.PrescriptionRepository.UpdatePrescription(ctx, prescription); err != nil {
		return nil, err
	}

	uc.notify(ctx, prescription.PatientID, "Prescription "+prescription.Status,
		"Your prescription has been "+prescription.Status, prescription.ID)

	return uc.buildPrescriptionResponse(ctx, prescription)
}

func (uc *prescriptionUsecase) DispensePrescription(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.DispensePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if prescription.Status != constvars.PrescriptionStatusPaid {
		return nil, exceptions.ErrPrescriptionNotPaid(nil)
	}

	medication, err := uc.MedicationRepository.FindByID(ctx, prescription.MedicationID)
	if err != nil {
		return nil, err
	}
	if medication != nil {
		medication.StockQuantity -= prescription.Quantity
		if medication.StockQuantity < 0 {
			medication.StockQuantity = 0
		}
		if err := uc.MedicationRepository.UpdateMedication(ctx, medication); err != nil {
			return nil, err
		}
	}

	prescription.Status = constvars.PrescriptionStatusCompleted
	if err := uc.PrescriptionRepository.UpdatePrescription(ctx, prescription); err != nil {
		return nil, err
	}

	uc.notify(ctx, prescription.PatientID, "Prescription dispensed",
		"Your medication is ready for pickup", prescription.ID)

	return uc.buildPrescriptionResponse(ctx, prescription)
}

func (uc *prescriptionUsecase) uploadSignature(ctx context.Context, ownerID, signatureData, signatureExtension string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(signatureData)
	if err != nil {
		return "", exceptions.ErrSignatureRequired(err)
	}
	maxBytes := uc.InternalConfig.Minio.SignatureMaxUploadSizeInMB * 1024 * 1024
	if len(decoded) > maxBytes {
		return "", exceptions.ErrSignatureRequired(nil)
	}

	extension := signatureExtension
	if extension == "" {
		extension = defaultSignatureExtension
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	fileName := utils.GenerateFileName("signature", ownerID, extension)
	return uc.Storage.UploadBase64Image(ctx, decoded, uc.InternalConfig.Minio.BucketName, fileName, extension)
}

func (uc *prescriptionUsecase) buildPrescriptionResponse(ctx context.Context, prescription *models.Prescription) (*responses.Prescription, error) {
	response := &responses.Prescription{
		ID:              prescription.ID,
		ConsultationID:  prescription.ConsultationID,
		AppointmentID:   prescription.AppointmentID,
		PatientID:       prescription.PatientID,
		DoctorID:        prescription.DoctorID,
		PharmacyID:      prescription.PharmacyID,
		PharmacistID:    prescription.PharmacistID,
		MedicationID:    prescription.MedicationID,
		MedicationName:  prescription.MedicationName,
		Dosage:          prescription.Dosage,
		Instructions:    prescription.Instructions,
		Quantity:        prescription.Quantity,
		UnitPrice:       prescription.UnitPrice,
		TotalPrice:      prescription.TotalPrice,
		Status:          prescription.Status,
		RejectionReason: prescription.RejectionReason,
	}

	patient, err := uc.UserRepository.FindByID(ctx, prescription.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		response.PatientName = patient.FullName
	}

	if prescription.SignatureObjectKey != "" {
		expiry := time.Duration(uc.InternalConfig.Minio.PreSignedURLExpiryTimeInHours) * time.Hour
		signatureURL, err := uc.Storage.GetObjectURLWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, prescription.SignatureObjectKey, expiry)
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Error("prescriptionUsecase.buildPrescriptionResponse error building signature url",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			response.SignatureURL = signatureURL
		}
	}
	return response, nil
}

func (uc *prescriptionUsecase) notify(ctx context.Context, userID, title, message, referenceID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	notification := &models.Notification{
		UserID:      userID,
		Type:        constvars.NotificationTypePrescription,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := uc.NotificationDispatcher.Dispatch(ctx, notification); err != nil {
		uc.Log.Error("prescriptionUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
