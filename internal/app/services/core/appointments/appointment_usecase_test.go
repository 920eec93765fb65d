package appointments

import (
	"context"
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/dto/responses"
	"medipass-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
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

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type appointmentUsecaseMocks struct {
	appointmentRepo *MockAppointmentRepository
	doctorRepo      *MockDoctorRepository
	userRepo        *MockUserRepository
	insuranceRepo   *MockInsuranceRepository
	paymentRepo     *MockPaymentRepository
	slotService     *MockSlotUsecase
	lockService     *MockLockerService
	dispatcher      *MockNotificationDispatcher
}

func newTestAppointmentUsecase() (*appointmentUsecase, *appointmentUsecaseMocks) {
	mocks := &appointmentUsecaseMocks{
		appointmentRepo: new(MockAppointmentRepository),
		doctorRepo:      new(MockDoctorRepository),
		userRepo:        new(MockUserRepository),
		insuranceRepo:   new(MockInsuranceRepository),
		paymentRepo:     new(MockPaymentRepository),
		slotService:     new(MockSlotUsecase),
		lockService:     new(MockLockerService),
		dispatcher:      new(MockNotificationDispatcher),
	}
	uc := &appointmentUsecase{
		AppointmentRepository:  mocks.appointmentRepo,
		DoctorRepository:       mocks.doctorRepo,
		UserRepository:         mocks.userRepo,
		InsuranceRepository:    mocks.insuranceRepo,
		PaymentRepository:      mocks.paymentRepo,
		SlotService:            mocks.slotService,
		LockService:            mocks.lockService,
		NotificationDispatcher: mocks.dispatcher,
		InternalConfig: &config.InternalConfig{
			Appointment: config.AppAppointment{LockExpirationInSeconds: 10},
		},
		Log: zap.NewNop(),
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

func nurseSession() *models.Session {
	return &models.Session{
		SessionID: "session-2",
		UserID:    "nurse-1",
		Role:      constvars.RoleNurse,
		FullName:  "Nurse Joy",
	}
}

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:              "doctor-1",
		UserID:          "doctor-user-1",
		HospitalID:      "hospital-1",
		DepartmentID:    "department-1",
		ConsultationFee: 15000,
	}
}

func expectResponseLookups(mocks *appointmentUsecaseMocks, appointmentID string) {
	mocks.userRepo.On("FindByID", mock.Anything, "patient-1").
		Return(&models.User{ID: "patient-1", FullName: "Alice Umutoni"}, nil)
	mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(testDoctor(), nil)
	mocks.userRepo.On("FindByID", mock.Anything, "doctor-user-1").
		Return(&models.User{ID: "doctor-user-1", FullName: "Dr. Jean Bosco"}, nil)
	mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, appointmentID).
		Return([]models.Payment{}, nil)
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateAppointment{
		DoctorID: "doctor-1",
		Date:     "2026-03-02",
		SlotTime: "09:00",
	}

	t.Run("happy path", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(testDoctor(), nil)
		mocks.lockService.On("TryLock", mock.Anything, constvars.RedisAppointmentLockKeyPrefix+"patient-1", mock.Anything).
			Return(true, "lock-value", nil)
		mocks.lockService.On("Unlock", mock.Anything, constvars.RedisAppointmentLockKeyPrefix+"patient-1", "lock-value").
			Return(nil)
		mocks.appointmentRepo.On("CountActiveByPatientID", mock.Anything, "patient-1").Return(int64(0), nil)
		mocks.slotService.On("GetAvailableSlots", mock.Anything, mock.Anything).
			Return(&responses.AvailableSlots{Slots: []string{"09:00", "09:30"}}, nil)
		mocks.appointmentRepo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.PatientID == "patient-1" &&
				a.DoctorID == "doctor-1" &&
				a.Status == constvars.AppointmentStatusPending &&
				a.ConsultationFee == 15000.0
		})).Return("appointment-1", nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)
		mocks.userRepo.On("FindByID", mock.Anything, "patient-1").
			Return(&models.User{ID: "patient-1", FullName: "Alice Umutoni"}, nil)
		mocks.userRepo.On("FindByID", mock.Anything, "doctor-user-1").
			Return(&models.User{ID: "doctor-user-1", FullName: "Dr. Jean Bosco"}, nil)
		mocks.paymentRepo.On("FindByTypeAndReference", mock.Anything, constvars.PaymentTypeConsultation, "appointment-1").
			Return([]models.Payment{}, nil)

		response, err := uc.CreateAppointment(ctx, patientSession(), request)

		require.NoError(t, err)
		assert.Equal(t, "appointment-1", response.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, response.Status)
		assert.Equal(t, 15000.0, response.ConsultationFee)
		assert.False(t, response.HasPaid)
		mocks.lockService.AssertCalled(t, "Unlock", mock.Anything, constvars.RedisAppointmentLockKeyPrefix+"patient-1", "lock-value")
	})

	t.Run("lock contention is treated as an active appointment", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(testDoctor(), nil)
		mocks.lockService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := uc.CreateAppointment(ctx, patientSession(), request)

		assertClientError(t, err, constvars.ErrClientActiveAppointmentExists)
		mocks.appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("second active appointment is rejected", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(testDoctor(), nil)
		mocks.lockService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mocks.lockService.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.appointmentRepo.On("CountActiveByPatientID", mock.Anything, "patient-1").Return(int64(1), nil)

		_, err := uc.CreateAppointment(ctx, patientSession(), request)

		assertClientError(t, err, constvars.ErrClientActiveAppointmentExists)
		mocks.appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("slot no longer available", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(testDoctor(), nil)
		mocks.lockService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mocks.lockService.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.appointmentRepo.On("CountActiveByPatientID", mock.Anything, "patient-1").Return(int64(0), nil)
		mocks.slotService.On("GetAvailableSlots", mock.Anything, mock.Anything).
			Return(&responses.AvailableSlots{Slots: []string{"10:00"}}, nil)

		_, err := uc.CreateAppointment(ctx, patientSession(), request)

		assertClientError(t, err, constvars.ErrClientSlotNotAvailable)
	})

	t.Run("unknown insurance", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		insuredRequest := &requests.CreateAppointment{
			DoctorID:    "doctor-1",
			Date:        "2026-03-02",
			SlotTime:    "09:00",
			InsuranceID: "insurance-1",
		}
		mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(testDoctor(), nil)
		mocks.insuranceRepo.On("FindByID", mock.Anything, "insurance-1").Return(nil, nil)

		_, err := uc.CreateAppointment(ctx, patientSession(), insuredRequest)

		assert.Error(t, err)
		mocks.lockService.AssertNotCalled(t, "TryLock")
	})
}

func TestApproveAppointment(t *testing.T) {
	ctx := context.Background()

	pendingAppointment := func() *models.Appointment {
		return &models.Appointment{
			ID:        "appointment-1",
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			Date:      "2026-03-02",
			SlotTime:  "09:00",
			Status:    constvars.AppointmentStatusPending,
		}
	}

	validVitals := &requests.ApproveAppointment{Weight: 70, Temperature: 36.6}

	t.Run("approval records vitals", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(pendingAppointment(), nil)
		mocks.appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusApproved &&
				a.Vitals != nil &&
				a.Vitals.Weight == 70.0
		})).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)
		expectResponseLookups(mocks, "appointment-1")

		response, err := uc.ApproveAppointment(ctx, nurseSession(), "appointment-1", validVitals)

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusApproved, response.Status)
		require.NotNil(t, response.Vitals)
		assert.Equal(t, 36.6, response.Vitals.Temperature)
	})

	t.Run("weight out of bounds", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(pendingAppointment(), nil)

		_, err := uc.ApproveAppointment(ctx, nurseSession(), "appointment-1", &requests.ApproveAppointment{Weight: 600, Temperature: 36.6})

		assertClientError(t, err, constvars.ErrClientInvalidWeight)
		mocks.appointmentRepo.AssertNotCalled(t, "UpdateAppointment")
	})

	t.Run("temperature out of bounds", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(pendingAppointment(), nil)

		_, err := uc.ApproveAppointment(ctx, nurseSession(), "appointment-1", &requests.ApproveAppointment{Weight: 70, Temperature: 20})

		assertClientError(t, err, constvars.ErrClientInvalidTemperature)
		mocks.appointmentRepo.AssertNotCalled(t, "UpdateAppointment")
	})

	t.Run("only pending appointments can be approved", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		approved := pendingAppointment()
		approved.Status = constvars.AppointmentStatusApproved
		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(approved, nil)

		_, err := uc.ApproveAppointment(ctx, nurseSession(), "appointment-1", validVitals)

		assertClientError(t, err, constvars.ErrClientAppointmentNotActionable)
	})
}

func TestRejectAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("rejection stores the reason", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(&models.Appointment{
			ID:        "appointment-1",
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			Date:      "2026-03-02",
			Status:    constvars.AppointmentStatusPending,
		}, nil)
		mocks.appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusRejected && a.RejectionReason == "doctor unavailable"
		})).Return(nil)
		mocks.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)
		expectResponseLookups(mocks, "appointment-1")

		response, err := uc.RejectAppointment(ctx, nurseSession(), "appointment-1", &requests.RejectAppointment{Reason: "doctor unavailable"})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusRejected, response.Status)
		assert.Equal(t, "doctor unavailable", response.RejectionReason)
	})

	t.Run("completed appointments cannot be rejected", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(&models.Appointment{
			ID:     "appointment-1",
			Status: constvars.AppointmentStatusCompleted,
		}, nil)

		_, err := uc.RejectAppointment(ctx, nurseSession(), "appointment-1", &requests.RejectAppointment{Reason: "too late"})

		assertClientError(t, err, constvars.ErrClientAppointmentNotActionable)
	})
}

func TestGetAppointmentByID(t *testing.T) {
	ctx := context.Background()

	t.Run("patient cannot read another patient's appointment", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.appointmentRepo.On("FindByID", mock.Anything, "appointment-1").Return(&models.Appointment{
			ID:        "appointment-1",
			PatientID: "someone-else",
			Status:    constvars.AppointmentStatusPending,
		}, nil)

		_, err := uc.GetAppointmentByID(ctx, patientSession(), "appointment-1")

		assert.Error(t, err)
	})
}
