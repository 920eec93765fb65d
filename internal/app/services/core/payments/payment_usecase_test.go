package payments

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

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	args := m.Called(ctx, prescription)
	return args.String(0), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByPharmacyID(ctx context.Context, pharmacyID string) ([]models.Prescription, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByConsultationID(ctx context.Context, consultationID string) ([]models.Prescription, error) {
	args := m.Called(ctx, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	args := m.Called(ctx, prescription)
	return args.Error(0)
}

type MockInsuranceRepository struct {
	mock.Mock
}

func (m *MockInsuranceRepository) CreateInsurance(ctx context.Context, insurance *models.Insurance) (string, error) {
	args := m.Called(ctx, insurance)
	return args.String(0), args.Error(1)
}

func (m *MockInsuranceRepository) FindByID(ctx context.Context, insuranceID string) (*models.Insurance, error) {
	args := m.Called(ctx, insuranceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) FindAll(ctx context.Context) ([]models.Insurance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Insurance), args.Error(1)
}

func (m *MockInsuranceRepository) UpdateInsurance(ctx context.Context, insurance *models.Insurance) error {
	args := m.Called(ctx, insurance)
	return args.Error(0)
}

func (m *MockInsuranceRepository) DeleteByID(ctx context.Context, insuranceID string) error {
	args := m.Called(ctx, insuranceID)
	return args.Error(0)
}

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type paymentUsecaseMocks struct {
	paymentRepo      *MockPaymentRepository
	appointmentRepo  *MockAppointmentRepository
	labRequestRepo   *MockLabTestRequestRepository
	prescriptionRepo *MockPrescriptionRepository
	insuranceRepo    *MockInsuranceRepository
	dispatcher       *MockNotificationDispatcher
}

func newTestPaymentUsecase() (*paymentUsecase, *paymentUsecaseMocks) {
	mocks := &paymentUsecaseMocks{
		paymentRepo:      new(MockPaymentRepository),
		appointmentRepo:  new(MockAppointmentRepository),
		labRequestRepo:   new(MockLabTestRequestRepository),
		prescriptionRepo: new(MockPrescriptionRepository),
		insuranceRepo:    new(MockInsuranceRepository),
		dispatcher:       new(MockNotificationDispatcher),
	}
	uc := &paymentUsecase{
		PaymentRepository:        mocks.paymentRepo,
		AppointmentRepository:    mocks.appointmentRepo,
		LabTestRequestRepository: mocks.labRequestRepo,
		PrescriptionRepository:   mocks.prescriptionRepo,
		InsuranceRepository:      mocks.insuranceRepo,
		NotificationDispatcher:   mocks.dispatcher,
		Log:                      zap.NewNop(),
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

func patientSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		UserID:    "patient-1",
		Role:      constvars.RolePatient,
		FullName:  "Alice Umutoni",
	}
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("consultation payment applies insurance coverage", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").
			Return(&models.Appointment{
				ID:              "appointment-1",
				PatientID:       "patient-1",
				DoctorID:        "doctor-1",
				Status:          constvars.AppointmentStatusApproved,
				ConsultationFee: 15000,
			}, nil)
		mocks.insuranceRepo.On("FindByID", mock.Anything, "insurance-1").
			Return(&models.Insurance{ID: "insurance-1", CoveragePercentage: 50}, nil)
		mocks.paymentRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Amount == 15000.0 &&
				p.CoverageAmount == 7500.0 &&
				p.PatientPays == 7500.0 &&
				p.Method == constvars.PaymentMethodMobileMoney &&
				p.Status == constvars.PaymentStatusCompleted
		})).Return("payment-1", nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeConsultation,
			ReferenceID: "appointment-1",
			Method:      constvars.PaymentMethodMobileMoney,
			InsuranceID: "insurance-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 7500.0, response.PatientPays)
		assert.Equal(t, constvars.PaymentMethodMobileMoney, response.Method)
		assert.Equal(t, constvars.PaymentStatusCompleted, response.Status)
		assert.NotEmpty(t, response.TransactionID)
	})

	t.Run("consultation charge comes from the fee stored at booking", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		// The appointment keeps the fee it was booked with, so the charge
		// stays 10000 even after the doctor's fee changes.
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").
			Return(&models.Appointment{
				ID:              "appointment-1",
				PatientID:       "patient-1",
				DoctorID:        "doctor-1",
				Status:          constvars.AppointmentStatusApproved,
				ConsultationFee: 10000,
			}, nil)
		mocks.paymentRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Amount == 10000.0 && p.PatientPays == 10000.0
		})).Return("payment-1", nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeConsultation,
			ReferenceID: "appointment-1",
			Method:      constvars.PaymentMethodCash,
		})

		require.NoError(t, err)
		assert.Equal(t, 10000.0, response.Amount)
	})

	t.Run("paying twice for the same reference is blocked", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{{Status: constvars.PaymentStatusCompleted}}, nil)

		_, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeConsultation,
			ReferenceID: "appointment-1",
		})

		assertClientError(t, err, constvars.ErrClientInvalidStatusTransition)
		mocks.paymentRepo.AssertNotCalled(t, "CreatePayment")
	})

	t.Run("consultation payment requires an approved appointment", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").
			Return(&models.Appointment{
				ID:        "appointment-1",
				PatientID: "patient-1",
				Status:    constvars.AppointmentStatusPending,
			}, nil)

		_, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeConsultation,
			ReferenceID: "appointment-1",
		})

		assertClientError(t, err, constvars.ErrClientAppointmentNotActionable)
	})

	t.Run("lab test payment moves the request to pending", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		awaiting := &models.LabTestRequest{
			ID:         "lab-request-1",
			PatientID:  "patient-1",
			Status:     constvars.LabTestStatusAwaitingPayment,
			TotalPrice: 5000,
		}
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeLabTest, "lab-request-1").
			Return([]models.Payment{}, nil)
		mocks.labRequestRepo.On("FindByID", mock.Anything, "lab-request-1").Return(awaiting, nil)
		mocks.paymentRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Amount == 5000.0 && p.PatientPays == 5000.0
		})).Return("payment-1", nil)
		mocks.labRequestRepo.On("UpdateRequest", mock.Anything, mock.MatchedBy(func(r *models.LabTestRequest) bool {
			return r.Status == constvars.LabTestStatusPending
		})).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeLabTest,
			ReferenceID: "lab-request-1",
			Method:      constvars.PaymentMethodMobileMoney,
		})

		require.NoError(t, err)
		assert.Equal(t, 5000.0, response.Amount)
	})

	t.Run("medication payment marks the prescription paid", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		approved := &models.Prescription{
			ID:         "prescription-1",
			PatientID:  "patient-1",
			Status:     constvars.PrescriptionStatusApproved,
			TotalPrice: 1000,
		}
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeMedication, "prescription-1").
			Return([]models.Payment{}, nil)
		mocks.prescriptionRepo.On("FindByID", mock.Anything, "prescription-1").Return(approved, nil)
		mocks.paymentRepo.On("CreatePayment", mock.Anything, mock.Anything).Return("payment-1", nil)
		mocks.prescriptionRepo.On("UpdatePrescription", mock.Anything, mock.MatchedBy(func(p *models.Prescription) bool {
			return p.Status == constvars.PrescriptionStatusPaid
		})).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeMedication,
			ReferenceID: "prescription-1",
			Method:      constvars.PaymentMethodCash,
		})

		require.NoError(t, err)
	})

	t.Run("medication payment requires an approved prescription", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeMedication, "prescription-1").
			Return([]models.Payment{}, nil)
		mocks.prescriptionRepo.On("FindByID", mock.Anything, "prescription-1").
			Return(&models.Prescription{
				ID:        "prescription-1",
				PatientID: "patient-1",
				Status:    constvars.PrescriptionStatusPending,
			}, nil)

		_, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeMedication,
			ReferenceID: "prescription-1",
		})

		assertClientError(t, err, constvars.ErrClientPrescriptionNotApproved)
	})

	t.Run("someone else's appointment cannot be paid for", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{}, nil)
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").
			Return(&models.Appointment{
				ID:        "appointment-1",
				PatientID: "someone-else",
				Status:    constvars.AppointmentStatusApproved,
			}, nil)

		_, err := uc.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			Type:        constvars.PaymentTypeConsultation,
			ReferenceID: "appointment-1",
		})

		assert.Error(t, err)
		mocks.paymentRepo.AssertNotCalled(t, "CreatePayment")
	})
}

func TestGetPayments(t *testing.T) {
	ctx := context.Background()

	t.Run("patients only see their own payments", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindByPatientID", mock.Anything, "patient-1").
			Return([]models.Payment{{ID: "payment-1", PatientID: "patient-1"}}, nil)

		responses, err := uc.GetPayments(ctx, patientSession())

		require.NoError(t, err)
		require.Len(t, responses, 1)
		mocks.paymentRepo.AssertNotCalled(t, "FindAll")
	})

	t.Run("staff see every payment", func(t *testing.T) {
		uc, mocks := newTestPaymentUsecase()

		mocks.paymentRepo.On("FindAll", mock.Anything).
			Return([]models.Payment{{ID: "payment-1"}, {ID: "payment-2"}}, nil)

		responses, err := uc.GetPayments(ctx, &models.Session{UserID: "admin-1", Role: constvars.RoleAdmin})

		require.NoError(t, err)
		require.Len(t, responses, 2)
	})
}
