package labtests

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	labTestUsecaseInstance contracts.LabTestUsecase
	onceLabTestUsecase     sync.Once
)

// Request statuses are strictly ordered. A technician can only move a
// request forward, and never out of awaiting_payment (that transition
// belongs to the payment flow).
var labTestStatusOrder = map[string]int{
	constvars.LabTestStatusAwaitingPayment: 0,
	constvars.LabTestStatusPending:         1,
	constvars.LabTestStatusInProgress:      2,
	constvars.LabTestStatusCompleted:       3,
}

type labTestUsecase struct {
	LabTestTemplateRepository contracts.LabTestTemplateRepository
	LabTestRequestRepository  contracts.LabTestRequestRepository
	LabTestResultRepository   contracts.LabTestResultRepository
	UserRepository            contracts.UserRepository
	NotificationDispatcher    contracts.NotificationDispatcher
	Log                       *zap.Logger
}

func NewLabTestUsecase(
	labTestTemplateRepository contracts.LabTestTemplateRepository,
	labTestRequestRepository contracts.LabTestRequestRepository,
	labTestResultRepository contracts.LabTestResultRepository,
	userRepository contracts.UserRepository,
	notificationDispatcher contracts.NotificationDispatcher,
	logger *zap.Logger,
) contracts.LabTestUsecase {
	onceLabTestUsecase.Do(func() {
		labTestUsecaseInstance = &labTestUsecase{
			LabTestTemplateRepository: labTestTemplateRepository,
			LabTestRequestRepository:  labTestRequestRepository,
			LabTestResultRepository:   labTestResultRepository,
			UserRepository:            userRepository,
			NotificationDispatcher:    notificationDispatcher,
			Log:                       logger,
		}
	})
	return labTestUsecaseInstance
}

func (uc *labTestUsecase) CreateTemplate(ctx context.Context, request *requests.CreateLabTestTemplate) (*responses.LabTestTemplate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.CreateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	template := &models.LabTestTemplate{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
	}
	template.SetCreatedAtUpdatedAt()

	templateID, err := uc.LabTestTemplateRepository.CreateTemplate(ctx, template)
	if err != nil {
		return nil, err
	}
	template.ID = templateID

	return &responses.LabTestTemplate{
		ID:          template.ID,
		Name:        template.Name,
		Description: template.Description,
		Price:       template.Price,
	}, nil
}

func (uc *labTestUsecase) GetTemplates(ctx context.Context) ([]responses.LabTestTemplate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.GetTemplates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	templates, err := uc.LabTestTemplateRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	templateResponses := make([]responses.LabTestTemplate, 0, len(templates))
	for _, template := range templates {
		templateResponses = append(templateResponses, responses.LabTestTemplate{
			ID:          template.ID,
			Name:        template.Name,
			Description: template.Description,
			Price:       template.Price,
		})
	}
	return templateResponses, nil
}

func (uc *labTestUsecase) GetRequests(ctx context.Context, session *models.Session) ([]responses.LabTestRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.GetRequests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	var labRequests []models.LabTestRequest
	var err error
	if session.Role == constvars.RolePatient {
		labRequests, err = uc.LabTestRequestRepository.FindByPatientID(ctx, session.UserID)
	} else {
		labRequests, err = uc.LabTestRequestRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	requestResponses := make([]responses.LabTestRequest, 0, len(labRequests))
	for _, labRequest := range labRequests {
		response, err := uc.buildRequestResponse(ctx, &labRequest)
		if err != nil {
			return nil, err
		}
		requestResponses = append(requestResponses, *response)
	}
	return requestResponses, nil
}

func (uc *labTestUsecase) UpdateRequestStatus(ctx context.Context, session *models.Session, labRequestID string, request *requests.UpdateLabTestStatus) (*responses.LabTestRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.UpdateRequestStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestRequestKey, labRequestID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	labRequest, err := uc.LabTestRequestRepository.FindByID(ctx, labRequestID)
	if err != nil {
		return nil, err
	}
	if labRequest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if labRequest.Status == constvars.LabTestStatusAwaitingPayment {
		return nil, exceptions.ErrLabTestNotPaid(nil)
	}
	// completed is reached only by submitting a result.
	if request.Status == constvars.LabTestStatusCompleted {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}
	if labTestStatusOrder[request.Status] <= labTestStatusOrder[labRequest.Status] {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	labRequest.Status = request.Status
	if labRequest.TechnicianID == "" {
		labRequest.TechnicianID = session.UserID
	}
	if err := uc.LabTestRequestRepository.UpdateRequest(ctx, labRequest); err != nil {
		return nil, err
	}

	uc.notify(ctx, labRequest.PatientID, "Lab test update",
		"Your lab test "+labRequest.TemplateName+" is now "+labRequest.Status, labRequest.ID)

	return uc.buildRequestResponse(ctx, labRequest)
}

func (uc *labTestUsecase) SubmitResult(ctx context.Context, session *models.Session, labRequestID string, request *requests.SubmitLabTestResult) (*responses.LabTestResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.SubmitResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestRequestKey, labRequestID),
	)

	labRequest, err := uc.LabTestRequestRepository.FindByID(ctx, labRequestID)
	if err != nil {
		return nil, err
	}
	if labRequest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if labRequest.Status == constvars.LabTestStatusAwaitingPayment {
		return nil, exceptions.ErrLabTestNotPaid(nil)
	}
	if strings.TrimSpace(request.ResultData) == "" {
		return nil, exceptions.ErrResultDataRequired(nil)
	}

	existing, err := uc.LabTestResultRepository.FindByRequestID(ctx, labRequest.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrResultAlreadySubmitted(nil)
	}

	result := &models.LabTestResult{
		RequestID:    labRequest.ID,
		TechnicianID: session.UserID,
		ResultStatus: request.ResultStatus,
		ResultData:   request.ResultData,
		Notes:        request.Notes,
	}
	result.SetCreatedAtUpdatedAt()

	resultID, err := uc.LabTestResultRepository.CreateResult(ctx, result)
	if err != nil {
		return nil, err
	}
	result.ID = resultID

	if labRequest.Status != constvars.LabTestStatusCompleted {
		labRequest.Status = constvars.LabTestStatusCompleted
		if labRequest.TechnicianID == "" {
			labRequest.TechnicianID = session.UserID
		}
		if err := uc.LabTestRequestRepository.UpdateRequest(ctx, labRequest); err != nil {
			return nil, err
		}
	}

	uc.notify(ctx, labRequest.PatientID, "Lab test result available",
		"The result of your lab test "+labRequest.TemplateName+" is available", labRequest.ID)

	uc.Log.Info("labTestUsecase.SubmitResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestRequestKey, labRequest.ID),
	)
	return &responses.LabTestResult{
		ID:           result.ID,
		RequestID:    result.RequestID,
		TechnicianID: result.TechnicianID,
		ResultStatus: result.ResultStatus,
		ResultData:   result.ResultData,
		Notes:        result.Notes,
	}, nil
}

func (uc *labTestUsecase) buildRequestResponse(ctx context.Context, labRequest *models.LabTestRequest) (*responses.LabTestRequest, error) {
	response := &responses.LabTestRequest{
		ID:             labRequest.ID,
		ConsultationID: labRequest.ConsultationID,
		AppointmentID:  labRequest.AppointmentID,
		PatientID:      labRequest.PatientID,
		TemplateID:     labRequest.TemplateID,
		TemplateName:   labRequest.TemplateName,
		Status:         labRequest.Status,
		TotalPrice:     labRequest.TotalPrice,
		TechnicianID:   labRequest.TechnicianID,
	}

	patient, err := uc.UserRepository.FindByID(ctx, labRequest.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		response.PatientName = patient.FullName
	}

	result, err := uc.LabTestResultRepository.FindByRequestID(ctx, labRequest.ID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		response.Result = &responses.LabTestResult{
			ID:           result.ID,
			RequestID:    result.RequestID,
			TechnicianID: result.TechnicianID,
			ResultStatus: result.ResultStatus,
			ResultData:   result.ResultData,
			Notes:        result.Notes,
		}
	}
	return response, nil
}

func (uc *labTestUsecase) notify(ctx context.Context, userID, title, message, referenceID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	notification := &models.Notification{
		UserID:      userID,
		Type:        constvars.NotificationTypeLabTest,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := uc.NotificationDispatcher.Dispatch(ctx, notification); err != nil {
		uc.Log.Error("labTestUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
