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

type HospitalController struct {
	Log             *zap.Logger
	HospitalUsecase contracts.HospitalUsecase
}

func NewHospitalController(logger *zap.Logger, hospitalUsecase contracts.HospitalUsecase) *HospitalController {
	return &HospitalController{
		Log:             logger,
		HospitalUsecase: hospitalUsecase,
	}
}

func (ctrl *HospitalController) CreateHospital(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HospitalController.CreateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateHospital)
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

	response, err := ctrl.HospitalUsecase.CreateHospital(ctx, request)
	if err != nil {
		ctrl.Log.Error("HospitalController.CreateHospital HospitalUsecase.CreateHospital error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) GetHospitals(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("HospitalController.GetHospitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HospitalUsecase.GetHospitals(ctx)
	if err != nil {
		ctrl.Log.Error("HospitalController.GetHospitals HospitalUsecase.GetHospitals error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) GetHospitalByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	hospitalID, err := utils.GetURLParam(r, "hospitalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("HospitalController.GetHospitalByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HospitalUsecase.GetHospitalByID(ctx, hospitalID)
	if err != nil {
		ctrl.Log.Error("HospitalController.GetHospitalByID HospitalUsecase.GetHospitalByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	hospitalID, err := utils.GetURLParam(r, "hospitalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("HospitalController.UpdateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.UpdateHospital)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HospitalUsecase.UpdateHospital(ctx, hospitalID, request)
	if err != nil {
		ctrl.Log.Error("HospitalController.UpdateHospital HospitalUsecase.UpdateHospital error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	hospitalID, err := utils.GetURLParam(r, "hospitalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("HospitalController.DeleteHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.HospitalUsecase.DeleteHospital(ctx, hospitalID); err != nil {
		ctrl.Log.Error("HospitalController.DeleteHospital HospitalUsecase.DeleteHospital error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHospitalSuccessMessage, nil)
}

func (ctrl *HospitalController) AssignDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	hospitalID, err := utils.GetURLParam(r, "hospitalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("HospitalController.AssignDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.AssignDepartment)
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

	if err := ctrl.HospitalUsecase.AssignDepartment(ctx, hospitalID, request); err != nil {
		ctrl.Log.Error("HospitalController.AssignDepartment HospitalUsecase.AssignDepartment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssignDepartmentSuccessMessage, nil)
}

func (ctrl *HospitalController) GetHospitalDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	hospitalID, err := utils.GetURLParam(r, "hospitalID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("HospitalController.GetHospitalDepartments called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.HospitalUsecase.GetHospitalDepartments(ctx, hospitalID)
	if err != nil {
		ctrl.Log.Error("HospitalController.GetHospitalDepartments HospitalUsecase.GetHospitalDepartments error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, response)
}
