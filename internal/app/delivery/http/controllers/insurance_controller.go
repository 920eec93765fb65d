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

type InsuranceController struct {
	Log              *zap.Logger
	InsuranceUsecase contracts.InsuranceUsecase
}

func NewInsuranceController(logger *zap.Logger, insuranceUsecase contracts.InsuranceUsecase) *InsuranceController {
	return &InsuranceController{
		Log:              logger,
		InsuranceUsecase: insuranceUsecase,
	}
}

func (ctrl *InsuranceController) CreateInsurance(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("InsuranceController.CreateInsurance called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateInsurance)
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

	response, err := ctrl.InsuranceUsecase.CreateInsurance(ctx, request)
	if err != nil {
		ctrl.Log.Error("InsuranceController.CreateInsurance InsuranceUsecase.CreateInsurance error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateInsuranceSuccessMessage, response)
}

func (ctrl *InsuranceController) GetInsurances(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("InsuranceController.GetInsurances called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.InsuranceUsecase.GetInsurances(ctx)
	if err != nil {
		ctrl.Log.Error("InsuranceController.GetInsurances InsuranceUsecase.GetInsurances error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInsuranceSuccessMessage, response)
}

func (ctrl *InsuranceController) GetInsuranceByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	insuranceID, err := utils.GetURLParam(r, "insuranceID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("InsuranceController.GetInsuranceByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.InsuranceUsecase.GetInsuranceByID(ctx, insuranceID)
	if err != nil {
		ctrl.Log.Error("InsuranceController.GetInsuranceByID InsuranceUsecase.GetInsuranceByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInsuranceSuccessMessage, response)
}

func (ctrl *InsuranceController) UpdateInsurance(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	insuranceID, err := utils.GetURLParam(r, "insuranceID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("InsuranceController.UpdateInsurance called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.UpdateInsurance)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.InsuranceUsecase.UpdateInsurance(ctx, insuranceID, request)
	if err != nil {
		ctrl.Log.Error("InsuranceController.UpdateInsurance InsuranceUsecase.UpdateInsurance error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateInsuranceSuccessMessage, response)
}

func (ctrl *InsuranceController) DeleteInsurance(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	insuranceID, err := utils.GetURLParam(r, "insuranceID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("InsuranceController.DeleteInsurance called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.InsuranceUsecase.DeleteInsurance(ctx, insuranceID); err != nil {
		ctrl.Log.Error("InsuranceController.DeleteInsurance InsuranceUsecase.DeleteInsurance error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteInsuranceSuccessMessage, nil)
}
