package pharmacies

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
	pharmacyUsecaseInstance contracts.PharmacyUsecase
	oncePharmacyUsecase     sync.Once
)

type pharmacyUsecase struct {
	PharmacyRepository contracts.PharmacyRepository
	HospitalRepository contracts.HospitalRepository
	Log                *zap.Logger
}

func NewPharmacyUsecase(
	pharmacyRepository contracts.PharmacyRepository,
	hospitalRepository contracts.HospitalRepository,
	logger *zap.Logger,
) contracts.PharmacyUsecase {
	oncePharmacyUsecase.Do(func() {
		pharmacyUsecaseInstance = &pharmacyUsecase{
			PharmacyRepository: pharmacyRepository,
			HospitalRepository: hospitalRepository,
			Log:                logger,
		}
	})
	return pharmacyUsecaseInstance
}

func (uc *pharmacyUsecase) CreatePharmacy(ctx context.Context, request *requests.CreatePharmacy) (*responses.Pharmacy, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pharmacyUsecase.CreatePharmacy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hospital, err := uc.HospitalRepository.FindByID(ctx, request.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	pharmacy := &models.Pharmacy{
		HospitalID: request.HospitalID,
		Name:       request.Name,
		Phone:      request.Phone,
	}
	pharmacy.SetCreatedAtUpdatedAt()

	pharmacyID, err := uc.PharmacyRepository.CreatePharmacy(ctx, pharmacy)
	if err != nil {
		return nil, err
	}
	pharmacy.ID = pharmacyID

	return buildPharmacyResponse(pharmacy), nil
}

func (uc *pharmacyUsecase) GetPharmacies(ctx context.Context) ([]responses.Pharmacy, error) {
	pharmacies, err := uc.PharmacyRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	pharmacyResponses := make([]responses.Pharmacy, 0, len(pharmacies))
	for _, pharmacy := range pharmacies {
		pharmacyResponses = append(pharmacyResponses, *buildPharmacyResponse(&pharmacy))
	}
	return pharmacyResponses, nil
}

func (uc *pharmacyUsecase) GetPharmacyByID(ctx context.Context, pharmacyID string) (*responses.Pharmacy, error) {
	pharmacy, err := uc.PharmacyRepository.FindByID(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildPharmacyResponse(pharmacy), nil
}

func (uc *pharmacyUsecase) DeletePharmacy(ctx context.Context, pharmacyID string) error {
	pharmacy, err := uc.PharmacyRepository.FindByID(ctx, pharmacyID)
	if err != nil {
		return err
	}
	if pharmacy == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.PharmacyRepository.DeleteByID(ctx, pharmacyID)
}

func buildPharmacyResponse(pharmacy *models.Pharmacy) *responses.Pharmacy {
	return &responses.Pharmacy{
		ID:         pharmacy.ID,
		HospitalID: pharmacy.HospitalID,
		Name:       pharmacy.Name,
		Phone:      pharmacy.Phone,
	}
}
