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

type NurseController struct {
	Log          *zap.Logger
	NurseUsecase contracts.NurseUsecase
}

func NewNurseController(logger *zap.Logger, nurseUsecase contracts.NurseUsecase) *NurseController {
	return &NurseController{
		Log:          logger,
		NurseUsecase: nurseUsecase,
	}
}

func (ctrl *NurseController) CreateNurse(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NurseController.CreateNurse called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateNurse)
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

	response, err := ctrl.NurseUsecase.CreateNurse(ctx, request)
	if err != nil {
		ctrl.Log.Error("NurseController.CreateNurse NurseUsecase.CreateNurse error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateNurseSuccessMessage, response)
}

func (ctrl *NurseController) GetNurses(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NurseController.GetNurses called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NurseUsecase.GetNurses(ctx)
	if err != nil {
		ctrl.Log.Error("NurseController.GetNurses NurseUsecase.GetNurses error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNurseSuccessMessage, response)
}

func (ctrl *NurseController) DeleteNurse(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	nurseID, err := utils.GetURLParam(r, "nurseID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("NurseController.DeleteNurse called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.NurseUsecase.DeleteNurse(ctx, nurseID); err != nil {
		ctrl.Log.Error("NurseController.DeleteNurse NurseUsecase.DeleteNurse error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNurseSuccessMessage, nil)
}
