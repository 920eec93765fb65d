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

type LabTestController struct {
	Log            *zap.Logger
	LabTestUsecase contracts.LabTestUsecase
}

func NewLabTestController(logger *zap.Logger, labTestUsecase contracts.LabTestUsecase) *LabTestController {
	return &LabTestController{
		Log:            logger,
		LabTestUsecase: labTestUsecase,
	}
}

func (ctrl *LabTestController) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("LabTestController.CreateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateLabTestTemplate)
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

	response, err := ctrl.LabTestUsecase.CreateTemplate(ctx, request)
	if err != nil {
		ctrl.Log.Error("LabTestController.CreateTemplate LabTestUsecase.CreateTemplate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabTestTemplateSuccess, response)
}

func (ctrl *LabTestController) GetTemplates(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("LabTestController.GetTemplates called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.GetTemplates(ctx)
	if err != nil {
		ctrl.Log.Error("LabTestController.GetTemplates LabTestUsecase.GetTemplates error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestSuccessMessage, response)
}

func (ctrl *LabTestController) GetRequests(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionData(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("LabTestController.GetRequests called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LabTestUsecase.GetRequests(ctx, session)
	if err != nil {
		ctrl.Log.Error("LabTestController.GetRequests LabTestUsecase.GetRequests error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestSuccessMessage, response)
}

func (ctrl *LabTestController) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionData(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	labRequestID, err := utils.GetURLParam(r, "requestID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("LabTestController.UpdateRequestStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestRequestKey, labRequestID))

	request := new(requests.UpdateLabTestStatus)
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

	response, err := ctrl.LabTestUsecase.UpdateRequestStatus(ctx, session, labRequestID, request)
	if err != nil {
		ctrl.Log.Error("LabTestController.UpdateRequestStatus LabTestUsecase.UpdateRequestStatus error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLabTestRequestSuccess, response)
}

func (ctrl *LabTestController) SubmitResult(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionData(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	labRequestID, err := utils.GetURLParam(r, "requestID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("LabTestController.SubmitResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestRequestKey, labRequestID))

	request := new(requests.SubmitLabTestResult)
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

	response, err := ctrl.LabTestUsecase.SubmitResult(ctx, session, labRequestID, request)
	if err != nil {
		ctrl.Log.Error("LabTestController.SubmitResult LabTestUsecase.SubmitResult error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitLabTestResultSuccessMessage, response)
}
