package controllers

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/exceptions"
	"medipass-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PharmacyController struct {
	Log             *zap.Logger
	PharmacyUsecase contracts.PharmacyUsecase
}

func NewPharmacyController(logger *zap.Logger, pharmacyUsecase contracts.PharmacyUsecase) *PharmacyController {
	return &PharmacyController{
		Log:             logger,
		PharmacyUsecase: pharmacyUsecase,
	}
}

func (ctrl *PharmacyController) CreatePharmacy(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PharmacyController.CreatePharmacy called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreatePharmacy)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PharmacyUsecase.CreatePharmacy(ctx, request)
	if err != nil {
		ctrl.Log.Error("PharmacyController.CreatePharmacy PharmacyUsecase.CreatePharmacy error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePharmacySuccessMessage, response)
}

func (ctrl *PharmacyController) GetPharmacies(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PharmacyController.GetPharmacies called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PharmacyUsecase.GetPharmacies(ctx)
	if err != nil {
		ctrl.Log.Error("PharmacyController.GetPharmacies PharmacyUsecase.GetPharmacies error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPharmacySuccessMessage, response)
}

func (ctrl *PharmacyController) GetPharmacyByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	pharmacyID, err := utils.GetURLParam(r, "pharmacyID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PharmacyController.GetPharmacyByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PharmacyUsecase.GetPharmacyByID(ctx, pharmacyID)
	if err != nil {
		ctrl.Log.Error("PharmacyController.GetPharmacyByID PharmacyUsecase.GetPharmacyByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPharmacySuccessMessage, response)
}

func (ctrl *PharmacyController) DeletePharmacy(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	pharmacyID, err := utils.GetURLParam(r, "pharmacyID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PharmacyController.DeletePharmacy called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PharmacyUsecase.DeletePharmacy(ctx, pharmacyID); err != nil {
		ctrl.Log.Error("PharmacyController.DeletePharmacy PharmacyUsecase.DeletePharmacy error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePharmacySuccessMessage, nil)
}
