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

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
}

func NewMedicationController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
	}
}

func (ctrl *MedicationController) CreateMedication(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("MedicationController.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateMedication)
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

	response, err := ctrl.MedicationUsecase.CreateMedication(ctx, request)
	if err != nil {
		ctrl.Log.Error("MedicationController.CreateMedication MedicationUsecase.CreateMedication error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicationSuccessMessage, response)
}

func (ctrl *MedicationController) GetMedications(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	pharmacyID := r.URL.Query().Get("pharmacy_id")
	ctrl.Log.Info("MedicationController.GetMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicationUsecase.GetMedications(ctx, pharmacyID)
	if err != nil {
		ctrl.Log.Error("MedicationController.GetMedications MedicationUsecase.GetMedications error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicationSuccessMessage, response)
}

func (ctrl *MedicationController) GetMedicationByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	medicationID, err := utils.GetURLParam(r, "medicationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("MedicationController.GetMedicationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicationUsecase.GetMedicationByID(ctx, medicationID)
	if err != nil {
		ctrl.Log.Error("MedicationController.GetMedicationByID MedicationUsecase.GetMedicationByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicationSuccessMessage, response)
}

func (ctrl *MedicationController) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	medicationID, err := utils.GetURLParam(r, "medicationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("MedicationController.UpdateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.UpdateMedication)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicationUsecase.UpdateMedication(ctx, medicationID, request)
	if err != nil {
		ctrl.Log.Error("MedicationController.UpdateMedication MedicationUsecase.UpdateMedication error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicationSuccessMessage, response)
}

func (ctrl *MedicationController) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	medicationID, err := utils.GetURLParam(r, "medicationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("MedicationController.DeleteMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.MedicationUsecase.DeleteMedication(ctx, medicationID); err != nil {
		ctrl.Log.Error("MedicationController.DeleteMedication MedicationUsecase.DeleteMedication error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicationSuccessMessage, nil)
}
