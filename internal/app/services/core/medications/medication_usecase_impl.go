package medications

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
	medicationUsecaseInstance contracts.MedicationUsecase
	onceMedicationUsecase     sync.Once
)

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	PharmacyRepository   contracts.PharmacyRepository
	Log                  *zap.Logger
}

func NewMedicationUsecase(
	medicationRepository contracts.MedicationRepository,
	pharmacyRepository contracts.PharmacyRepository,
	logger *zap.Logger,
) contracts.MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			MedicationRepository: medicationRepository,
			PharmacyRepository:   pharmacyRepository,
			Log:                  logger,
		}
	})
	return medicationUsecaseInstance
}

func (uc *medicationUsecase) CreateMedication(ctx context.Context, request *requests.CreateMedication) (*responses.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pharmacy, err := uc.PharmacyRepository.FindByID(ctx, request.PharmacyID)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	medication := &models.Medication{
		PharmacyID:    request.PharmacyID,
		Name:          request.Name,
		Description:   request.Description,
		UnitPrice:     request.UnitPrice,
		StockQuantity: request.StockQuantity,
	}
	medication.SetCreatedAtUpdatedAt()

	medicationID, err := uc.MedicationRepository.CreateMedication(ctx, medication)
	if err != nil {
		return nil, err
	}
	medication.ID = medicationID

	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) GetMedications(ctx context.Context, pharmacyID string) ([]responses.Medication, error) {
	var medications []models.Medication
	var err error
	if pharmacyID != "" {
		medications, err = uc.MedicationRepository.FindByPharmacyID(ctx, pharmacyID)
	} else {
		medications, err = uc.MedicationRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	medicationResponses := make([]responses.Medication, 0, len(medications))
	for _, medication := range medications {
		medicationResponses = append(medicationResponses, *buildMedicationResponse(&medication))
	}
	return medicationResponses, nil
}

func (uc *medicationUsecase) GetMedicationByID(ctx context.Context, medicationID string) (*responses.Medication, error) {
	medication, err := uc.MedicationRepository.FindByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) UpdateMedication(ctx context.Context, medicationID string, request *requests.UpdateMedication) (*responses.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.UpdateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	medication, err := uc.MedicationRepository.FindByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		medication.Name = request.Name
	}
	if request.Description != "" {
		medication.Description = request.Description
	}
	if request.UnitPrice != nil {
		medication.UnitPrice = *request.UnitPrice
	}
	if request.StockQuantity != nil {
		medication.StockQuantity = *request.StockQuantity
	}

	if err := uc.MedicationRepository.UpdateMedication(ctx, medication); err != nil {
		return nil, err
	}
	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) DeleteMedication(ctx context.Context, medicationID string) error {
	medication, err := uc.MedicationRepository.FindByID(ctx, medicationID)
	if err != nil {
		return err
	}
	if medication == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.MedicationRepository.DeleteByID(ctx, medicationID)
}

func buildMedicationResponse(medication *models.Medication) *responses.Medication {
	return &responses.Medication{
		ID:            medication.ID,
		PharmacyID:    medication.PharmacyID,
		Name:          medication.Name,
		Description:   medication.Description,
		UnitPrice:     medication.UnitPrice,
		StockQuantity: medication.StockQuantity,
	}
}
