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

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *ConsultationController {
	return &ConsultationController{
		Log:                 logger,
		ConsultationUsecase: consultationUsecase,
	}
}

func (ctrl *ConsultationController) SaveConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionData(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConsultationController.SaveConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.SaveConsultation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ConsultationController.SaveConsultation error decoding JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ConsultationController.SaveConsultation validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.SaveConsultation(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("ConsultationController.SaveConsultation ConsultationUsecase.SaveConsultation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConsultationController.SaveConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveConsultationSuccessMessage, response)
}

func (ctrl *ConsultationController) GetConsultationByAppointmentID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionData(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID, err := utils.GetURLParam(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("ConsultationController.GetConsultationByAppointmentID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.GetConsultationByAppointmentID(ctx, session, appointmentID)
	if err != nil {
		ctrl.Log.Error("ConsultationController.GetConsultationByAppointmentID ConsultationUsecase.GetConsultationByAppointmentID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConsultationSuccessMessage, response)
}
