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

type DepartmentController struct {
	Log               *zap.Logger
	DepartmentUsecase contracts.DepartmentUsecase
}

func NewDepartmentController(logger *zap.Logger, departmentUsecase contracts.DepartmentUsecase) *DepartmentController {
	return &DepartmentController{
		Log:               logger,
		DepartmentUsecase: departmentUsecase,
	}
}

func (ctrl *DepartmentController) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DepartmentController.CreateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateDepartment)
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

	response, err := ctrl.DepartmentUsecase.CreateDepartment(ctx, request)
	if err != nil {
		ctrl.Log.Error("DepartmentController.CreateDepartment DepartmentUsecase.CreateDepartment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) GetDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DepartmentController.GetDepartments called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DepartmentUsecase.GetDepartments(ctx)
	if err != nil {
		ctrl.Log.Error("DepartmentController.GetDepartments DepartmentUsecase.GetDepartments error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) GetDepartmentByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	departmentID, err := utils.GetURLParam(r, "departmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DepartmentController.GetDepartmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DepartmentUsecase.GetDepartmentByID(ctx, departmentID)
	if err != nil {
		ctrl.Log.Error("DepartmentController.GetDepartmentByID DepartmentUsecase.GetDepartmentByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	departmentID, err := utils.GetURLParam(r, "departmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DepartmentController.UpdateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.UpdateDepartment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DepartmentUsecase.UpdateDepartment(ctx, departmentID, request)
	if err != nil {
		ctrl.Log.Error("DepartmentController.UpdateDepartment DepartmentUsecase.UpdateDepartment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	departmentID, err := utils.GetURLParam(r, "departmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DepartmentController.DeleteDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DepartmentUsecase.DeleteDepartment(ctx, departmentID); err != nil {
		ctrl.Log.Error("DepartmentController.DeleteDepartment DepartmentUsecase.DeleteDepartment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDepartmentSuccessMessage, nil)
}
