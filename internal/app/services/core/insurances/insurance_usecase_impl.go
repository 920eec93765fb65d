package insurances

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
	insuranceUsecaseInstance contracts.InsuranceUsecase
	onceInsuranceUsecase     sync.Once
)

type insuranceUsecase struct {
	InsuranceRepository contracts.InsuranceRepository
	Log                 *zap.Logger
}

func NewInsuranceUsecase(
	insuranceRepository contracts.InsuranceRepository,
	logger *zap.Logger,
) contracts.InsuranceUsecase {
	onceInsuranceUsecase.Do(func() {
		insuranceUsecaseInstance = &insuranceUsecase{
			InsuranceRepository: insuranceRepository,
			Log:                 logger,
		}
	})
	return insuranceUsecaseInstance
}

func (uc *insuranceUsecase) CreateInsurance(ctx context.Context, request *requests.CreateInsurance) (*responses.Insurance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insuranceUsecase.CreateInsurance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.CoveragePercentage < 0 || request.CoveragePercentage > 100 {
		return nil, exceptions.ErrInsuranceCoverageInvalid(nil)
	}

	insurance := &models.Insurance{
		Name:               request.Name,
		CoveragePercentage: request.CoveragePercentage,
	}
	insurance.SetCreatedAtUpdatedAt()

	insuranceID, err := uc.InsuranceRepository.CreateInsurance(ctx, insurance)
	if err != nil {
		return nil, err
	}
	insurance.ID = insuranceID

	return buildInsuranceResponse(insurance), nil
}

func (uc *insuranceUsecase) GetInsurances(ctx context.Context) ([]responses.Insurance, error) {
	insuranceList, err := uc.InsuranceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	insuranceResponses := make([]responses.Insurance, 0, len(insuranceList))
	for _, insurance := range insuranceList {
		insuranceResponses = append(insuranceResponses, *buildInsuranceResponse(&insurance))
	}
	return insuranceResponses, nil
}

func (uc *insuranceUsecase) GetInsuranceByID(ctx context.Context, insuranceID string) (*responses.Insurance, error) {
	insurance, err := uc.InsuranceRepository.FindByID(ctx, insuranceID)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildInsuranceResponse(insurance), nil
}

func (uc *insuranceUsecase) UpdateInsurance(ctx context.Context, insuranceID string, request *requests.UpdateInsurance) (*responses.Insurance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("insuranceUsecase.UpdateInsurance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	insurance, err := uc.InsuranceRepository.FindByID(ctx, insuranceID)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		insurance.Name = request.Name
	}
	if request.CoveragePercentage != nil {
		if *request.CoveragePercentage < 0 || *request.CoveragePercentage > 100 {
			return nil, exceptions.ErrInsuranceCoverageInvalid(nil)
		}
		insurance.CoveragePercentage = *request.CoveragePercentage
	}

	if err := uc.InsuranceRepository.UpdateInsurance(ctx, insurance); err != nil {
		return nil, err
	}
	return buildInsuranceResponse(insurance), nil
}

func (uc *insuranceUsecase) DeleteInsurance(ctx context.Context, insuranceID string) error {
	insurance, err := uc.InsuranceRepository.FindByID(ctx, insuranceID)
	if err != nil {
		return err
	}
	if insurance == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.InsuranceRepository.DeleteByID(ctx, insuranceID)
}

func buildInsuranceResponse(insurance *models.Insurance) *responses.Insurance {
	return &responses.Insurance{
		ID:                 insurance.ID,
		Name:               insurance.Name,
		CoveragePercentage: insurance.CoveragePercentage,
	}
}
