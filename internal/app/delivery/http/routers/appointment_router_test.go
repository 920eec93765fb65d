package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointments(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) ApproveAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.ApproveAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) RejectAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RejectAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) GetAvailableSlots(ctx context.Context, request *requests.GetAvailableSlots) (*responses.AvailableSlots, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AvailableSlots), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testJWTSecret = "test-jwt-secret"

func newAppointmentTestRouter(t *testing.T, appointmentUsecase contracts.AppointmentUsecase, slotUsecase contracts.SlotUsecase, sessionService contracts.SessionService) chi.Router {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}

	appointmentController := controllers.NewAppointmentController(logger, appointmentUsecase, slotUsecase)
	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachAppointmentRoutes(router, middlewareInstance, appointmentController)
	return router
}

func bearerTokenFor(t *testing.T, sessionService *MockSessionService, session *models.Session) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(session.SessionID, testJWTSecret, 1)
	require.NoError(t, err)
	sessionService.On("GetSessionData", mock.Anything, session.SessionID).Return(session, nil)
	return "Bearer " + token
}

func TestAppointmentRouter_RoleGuards(t *testing.T) {
	approveBody := func() *bytes.Buffer {
		jsonBody, _ := json.Marshal(requests.ApproveAppointment{Weight: 70, Temperature: 36.6})
		return bytes.NewBuffer(jsonBody)
	}

	t.Run("nurse can approve", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		token := bearerTokenFor(t, mockSessionService, &models.Session{
			SessionID: "session-nurse",
			UserID:    "nurse-1",
			Role:      constvars.RoleNurse,
		})
		mockAppointmentUsecase.On("ApproveAppointment", mock.Anything, mock.Anything, "appointment-1", mock.Anything).
			Return(&responses.Appointment{ID: "appointment-1", Status: constvars.AppointmentStatusApproved}, nil)

		req := httptest.NewRequest("PATCH", "/appointment-1/approve", approveBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAppointmentUsecase.AssertExpectations(t)
	})

	t.Run("patient cannot approve", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		token := bearerTokenFor(t, mockSessionService, &models.Session{
			SessionID: "session-patient",
			UserID:    "patient-1",
			Role:      constvars.RolePatient,
		})

		req := httptest.NewRequest("PATCH", "/appointment-1/approve", approveBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockAppointmentUsecase.AssertNotCalled(t, "ApproveAppointment")
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		req := httptest.NewRequest("PATCH", "/appointment-1/approve", approveBody())
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSessionService.AssertNotCalled(t, "GetSessionData")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		req := httptest.NewRequest("PATCH", "/appointment-1/approve", approveBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSessionService.AssertNotCalled(t, "GetSessionData")
	})

	t.Run("only patients can book", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		token := bearerTokenFor(t, mockSessionService, &models.Session{
			SessionID: "session-doctor",
			UserID:    "doctor-user-1",
			Role:      constvars.RoleDoctor,
		})

		jsonBody, _ := json.Marshal(requests.CreateAppointment{
			DoctorID: "doctor-1",
			Date:     "2026-03-02",
			SlotTime: "09:00",
		})
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockAppointmentUsecase.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("patient booking reaches the usecase", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		token := bearerTokenFor(t, mockSessionService, &models.Session{
			SessionID: "session-patient",
			UserID:    "patient-1",
			Role:      constvars.RolePatient,
		})
		mockAppointmentUsecase.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.UserID == "patient-1"
		}), mock.AnythingOfType("*requests.CreateAppointment")).
			Return(&responses.Appointment{ID: "appointment-1", Status: constvars.AppointmentStatusPending}, nil)

		jsonBody, _ := json.Marshal(requests.CreateAppointment{
			DoctorID: "doctor-1",
			Date:     "2026-03-02",
			SlotTime: "09:00",
		})
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAppointmentUsecase.AssertExpectations(t)
	})
}

func TestAppointmentRouter_Validation(t *testing.T) {
	t.Run("invalid JSON body", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		token := bearerTokenFor(t, mockSessionService, &models.Session{
			SessionID: "session-patient",
			UserID:    "patient-1",
			Role:      constvars.RolePatient,
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAppointmentUsecase.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		mockSlotUsecase := new(MockSlotUsecase)
		mockSessionService := new(MockSessionService)
		router := newAppointmentTestRouter(t, mockAppointmentUsecase, mockSlotUsecase, mockSessionService)

		token := bearerTokenFor(t, mockSessionService, &models.Session{
			SessionID: "session-patient",
			UserID:    "patient-1",
			Role:      constvars.RolePatient,
		})

		jsonBody, _ := json.Marshal(map[string]interface{}{})
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(constvars.HeaderAuthorization, token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAppointmentUsecase.AssertNotCalled(t, "CreateAppointment")
	})
}
