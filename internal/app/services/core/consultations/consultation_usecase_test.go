package consultations

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error) {
	args := m.Called(ctx, consultation)
	return args.String(0), args.Error(1)
}

func (m *MockConsultationRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	args := m.Called(ctx, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Consultation, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) UpdateConsultation(ctx context.Context, consultation *models.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CountActiveByPatientID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByDepartmentID(ctx context.Context, departmentID string) ([]models.Doctor, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

type MockLabTestTemplateRepository struct {
	mock.Mock
}

func (m *MockLabTestTemplateRepository) CreateTemplate(ctx context.Context, template *models.LabTestTemplate) (string, error) {
	args := m.Called(ctx, template)
	return args.String(0), args.Error(1)
}

func (m *MockLabTestTemplateRepository) FindByID(ctx context.Context, templateID string) (*models.LabTestTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LabTestTemplate), args.Error(1)
}

func (m *MockLabTestTemplateRepository) FindAll(ctx context.Context) ([]models.LabTestTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabTestTemplate), args.Error(1)
}

type MockLabTestRequestRepository struct {
	mock.Mock
}

func (m *MockLabTestRequestRepository) CreateRequest(ctx context.Context, request *models.LabTestRequest) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockLabTestRequestRepository) FindByID(ctx context.Context, requestID string) (*models.LabTestRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LabTestRequest), args.Error(1)
}

func (m *MockLabTestRequestRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabTestRequest, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabTestRequest), args.Error(1)
}

func (m *MockLabTestRequestRepository) FindByConsultationID(ctx context.Context, consultationID string) ([]models.LabTestRequest, error) {
	args := m.Called(ctx, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabTestRequest), args.Error(1)
}

func (m *MockLabTestRequestRepository) FindByConsultationAndTemplate(ctx context.Context, consultationID, templateID string) (*models.LabTestRequest, error) {
	args := m.Called(ctx, consultationID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LabTestRequest), args.Error(1)
}

func (m *MockLabTestRequestRepository) FindAll(ctx context.Context) ([]models.LabTestRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabTestRequest), args.Error(1)
}

func (m *MockLabTestRequestRepository) UpdateRequest(ctx context.Context, request *models.LabTestRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Payment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByTypeAndReference(ctx context.Context, paymentType, referenceID string) ([]models.Payment, error) {
	args := m.Called(ctx, paymentType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type consultationUsecaseMocks struct {
	consultationRepo *MockConsultationRepository
	appointmentRepo  *MockAppointmentRepository
	doctorRepo       *MockDoctorRepository
	templateRepo     *MockLabTestTemplateRepository
	labRequestRepo   *MockLabTestRequestRepository
	paymentRepo      *MockPaymentRepository
	dispatcher       *MockNotificationDispatcher
}

func newTestConsultationUsecase() (*consultationUsecase, *consultationUsecaseMocks) {
	mocks := &consultationUsecaseMocks{
		consultationRepo: new(MockConsultationRepository),
		appointmentRepo:  new(MockAppointmentRepository),
		doctorRepo:       new(MockDoctorRepository),
		templateRepo:     new(MockLabTestTemplateRepository),
		labRequestRepo:   new(MockLabTestRequestRepository),
		paymentRepo:      new(MockPaymentRepository),
		dispatcher:       new(MockNotificationDispatcher),
	}
	uc := &consultationUsecase{
		ConsultationRepository:    mocks.consultationRepo,
		AppointmentRepository:     mocks.appointmentRepo,
		DoctorRepository:          mocks.doctorRepo,
		LabTestTemplateRepository: mocks.templateRepo,
		LabTestRequestRepository:  mocks.labRequestRepo,
		PaymentRepository:         mocks.paymentRepo,
		NotificationDispatcher:    mocks.dispatcher,
		Log:                       zap.NewNop(),
	}
	return uc, mocks
}

func assertClientError(t *testing.T, err error, clientMessage string) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a *exceptions.CustomError, got %T", err)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func doctorSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		UserID:    "doctor-user-1",
		Role:      constvars.RoleDoctor,
		FullName:  "Dr. Jean Bosco",
	}
}

func approvedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:        "appointment-1",
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Date:      "2026-03-02",
		SlotTime:  "09:00",
		Status:    constvars.AppointmentStatusApproved,
	}
}

func paidConsultation() []models.Payment {
	return []models.Payment{{Status: constvars.PaymentStatusCompleted}}
}

func TestSaveConsultation(t *testing.T) {
	ctx := context.Background()

	t.Run("records a new consultation and completes the appointment", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(approvedAppointment(), nil)
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return(paidConsultation(), nil)
		mocks.consultationRepo.On("FindByAppointmentID", mock.Anything, "appointment-1").Return(nil, nil)
		mocks.consultationRepo.On("CreateConsultation", mock.Anything, mock.MatchedBy(func(c *models.Consultation) bool {
			return c.AppointmentID == "appointment-1" &&
				c.PatientID == "patient-1" &&
				c.Diagnosis == "malaria" &&
				!c.RequiresLabTest &&
				c.RequiresPrescription
		})).Return("consultation-1", nil)
		mocks.labRequestRepo.On("FindByConsultationID", mock.Anything, "consultation-1").
			Return([]models.LabTestRequest{}, nil)
		mocks.appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusCompleted
		})).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == constvars.NotificationTypeConsultation &&
				n.Title == "Consultation completed" &&
				n.Message == "rest and fluids" &&
				n.ReferenceID == "appointment-1"
		})).Return(nil)

		response, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID:        "appointment-1",
			Diagnosis:            "malaria",
			Notes:                "rest and fluids",
			RequiresPrescription: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "consultation-1", response.ID)
		assert.Equal(t, "malaria", response.Diagnosis)
		assert.True(t, response.RequiresPrescription)
		mocks.appointmentRepo.AssertCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
		mocks.dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
	})

	t.Run("blank diagnosis", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		_, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID: "appointment-1",
			Diagnosis:     "   ",
		})

		assertClientError(t, err, constvars.ErrClientDiagnosisRequired)
		mocks.doctorRepo.AssertNotCalled(t, "FindByUserID")
	})

	t.Run("unpaid consultation is blocked", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(approvedAppointment(), nil)
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{{Status: constvars.PaymentStatusPending}}, nil)

		_, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID: "appointment-1",
			Diagnosis:     "malaria",
		})

		assertClientError(t, err, constvars.ErrClientConsultationNotPaid)
		mocks.consultationRepo.AssertNotCalled(t, "CreateConsultation")
	})

	t.Run("another doctor's appointment is rejected", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-2", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(approvedAppointment(), nil)

		_, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID: "appointment-1",
			Diagnosis:     "malaria",
		})

		assert.Error(t, err)
		mocks.paymentRepo.AssertNotCalled(t, "FindByTypeAndReference")
	})

	t.Run("pending appointment cannot be consulted", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		pending := approvedAppointment()
		pending.Status = constvars.AppointmentStatusPending
		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(pending, nil)

		_, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID: "appointment-1",
			Diagnosis:     "malaria",
		})

		assertClientError(t, err, constvars.ErrClientAppointmentNotActionable)
	})

	t.Run("re-saving updates the record and skips existing lab requests", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		completed := approvedAppointment()
		completed.Status = constvars.AppointmentStatusCompleted
		existing := &models.Consultation{
			ID:            "consultation-1",
			AppointmentID: "appointment-1",
			PatientID:     "patient-1",
			DoctorID:      "doctor-1",
			Diagnosis:     "malaria",
		}
		spawned := models.LabTestRequest{
			ID:             "lab-request-1",
			ConsultationID: "consultation-1",
			TemplateID:     "template-1",
			Status:         constvars.LabTestStatusAwaitingPayment,
		}

		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(completed, nil)
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return(paidConsultation(), nil)
		mocks.consultationRepo.On("FindByAppointmentID", mock.Anything, "appointment-1").Return(existing, nil)
		mocks.consultationRepo.On("UpdateConsultation", mock.Anything, mock.MatchedBy(func(c *models.Consultation) bool {
			return c.ID == "consultation-1" && c.Diagnosis == "severe malaria"
		})).Return(nil)
		mocks.labRequestRepo.On("FindByConsultationAndTemplate", mock.Anything, "consultation-1", "template-1").
			Return(&spawned, nil)
		mocks.labRequestRepo.On("FindByConsultationID", mock.Anything, "consultation-1").
			Return([]models.LabTestRequest{spawned}, nil)

		response, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID:      "appointment-1",
			Diagnosis:          "severe malaria",
			RequiresLabTest:    true,
			LabTestTemplateIDs: []string{"template-1"},
		})

		require.NoError(t, err)
		require.Len(t, response.LabTestRequests, 1)
		assert.Equal(t, "lab-request-1", response.LabTestRequests[0].ID)
		mocks.labRequestRepo.AssertNotCalled(t, "CreateRequest")
		mocks.appointmentRepo.AssertNotCalled(t, "UpdateAppointment")
		// Nothing new happened, so the patient hears nothing.
		mocks.dispatcher.AssertNotCalled(t, "Dispatch")
	})

	t.Run("new template spawns a lab request awaiting payment", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(approvedAppointment(), nil)
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return(paidConsultation(), nil)
		mocks.consultationRepo.On("FindByAppointmentID", mock.Anything, "appointment-1").Return(nil, nil)
		mocks.consultationRepo.On("CreateConsultation", mock.Anything, mock.Anything).Return("consultation-1", nil)
		mocks.labRequestRepo.On("FindByConsultationAndTemplate", mock.Anything, "consultation-1", "template-1").
			Return(nil, nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").
			Return(&models.LabTestTemplate{ID: "template-1", Name: "Full blood count", Price: 5000}, nil)
		mocks.labRequestRepo.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *models.LabTestRequest) bool {
			return r.Status == constvars.LabTestStatusAwaitingPayment &&
				r.TemplateName == "Full blood count" &&
				r.TotalPrice == 5000.0
		})).Return("lab-request-1", nil)
		mocks.labRequestRepo.On("FindByConsultationID", mock.Anything, "consultation-1").
			Return([]models.LabTestRequest{{ID: "lab-request-1", Status: constvars.LabTestStatusAwaitingPayment}}, nil)
		mocks.appointmentRepo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == constvars.NotificationTypeLabTest &&
				n.Title == "Lab tests required" &&
				n.Message == "Doctor has prescribed 1 lab test(s). Total: 5000 RWF. Please proceed with payment." &&
				n.ReferenceID == "consultation-1"
		})).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == constvars.NotificationTypeConsultation &&
				n.Message == "Your consultation has been completed."
		})).Return(nil)

		response, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID:      "appointment-1",
			Diagnosis:          "anemia suspicion",
			RequiresLabTest:    true,
			LabTestTemplateIDs: []string{"template-1"},
		})

		require.NoError(t, err)
		require.Len(t, response.LabTestRequests, 1)
		assert.Equal(t, constvars.LabTestStatusAwaitingPayment, response.LabTestRequests[0].Status)
		mocks.dispatcher.AssertNumberOfCalls(t, "Dispatch", 2)
	})

	t.Run("template ids without the lab flag spawn nothing", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.doctorRepo.On("FindByUserID", mock.Anything, "doctor-user-1").
			Return(&models.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(approvedAppointment(), nil)
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return(paidConsultation(), nil)
		mocks.consultationRepo.On("FindByAppointmentID", mock.Anything, "appointment-1").Return(nil, nil)
		mocks.consultationRepo.On("CreateConsultation", mock.Anything, mock.Anything).Return("consultation-1", nil)
		mocks.labRequestRepo.On("FindByConsultationID", mock.Anything, "consultation-1").
			Return([]models.LabTestRequest{}, nil)
		mocks.appointmentRepo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.SaveConsultation(ctx, doctorSession(), &requests.SaveConsultation{
			AppointmentID:      "appointment-1",
			Diagnosis:          "viral infection",
			LabTestTemplateIDs: []string{"template-1"},
		})

		require.NoError(t, err)
		assert.Empty(t, response.LabTestRequests)
		mocks.labRequestRepo.AssertNotCalled(t, "CreateRequest")
		mocks.templateRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestGetConsultationByAppointmentID(t *testing.T) {
	ctx := context.Background()

	t.Run("patient can only read their own consultation", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.consultationRepo.On("FindByAppointmentID", mock.Anything, "appointment-1").
			Return(&models.Consultation{ID: "consultation-1", PatientID: "someone-else"}, nil)

		_, err := uc.GetConsultationByAppointmentID(ctx, &models.Session{
			UserID: "patient-1",
			Role:   constvars.RolePatient,
		}, "appointment-1")

		assert.Error(t, err)
	})

	t.Run("missing consultation", func(t *testing.T) {
		uc, mocks := newTestConsultationUsecase()

		mocks.consultationRepo.On("FindByAppointmentID", mock.Anything, "appointment-1").Return(nil, nil)

		_, err := uc.GetConsultationByAppointmentID(ctx, doctorSession(), "appointment-1")

		assert.Error(t, err)
	})
}
