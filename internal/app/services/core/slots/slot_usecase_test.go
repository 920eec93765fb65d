package slots

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func newTestSlotUsecase(doctorRepo *MockDoctorRepository, appointmentRepo *MockAppointmentRepository, now time.Time) *slotUsecase {
	return &slotUsecase{
		DoctorRepository:      doctorRepo,
		AppointmentRepository: appointmentRepo,
		Log:                   zap.NewNop(),
		now:                   func() time.Time { return now },
	}
}

func mondayDoctor() *models.Doctor {
	return &models.Doctor{
		ID:                  "doctor-1",
		UserID:              "user-1",
		WorkDays:            []string{"Monday", "Wednesday"},
		StartTime:           "09:00",
		EndTime:             "11:00",
		SlotDurationMinutes: 30,
	}
}

func TestGetAvailableSlots(t *testing.T) {
	ctx := context.Background()
	// 2026-03-02 is a Monday.
	mondayDate := "2026-03-02"
	farFromMonday := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	t.Run("all slots free on a working day", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestSlotUsecase(doctorRepo, appointmentRepo, farFromMonday)

		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(mondayDoctor(), nil)
		appointmentRepo.On("FindByDoctorAndDate", mock.Anything, "doctor-1", mondayDate).
			Return([]models.Appointment{}, nil)

		response, err := uc.GetAvailableSlots(ctx, &requests.GetAvailableSlots{DoctorID: "doctor-1", Date: mondayDate})

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, response.Slots)
	})

	t.Run("booked pending and approved slots are excluded", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestSlotUsecase(doctorRepo, appointmentRepo, farFromMonday)

		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(mondayDoctor(), nil)
		appointmentRepo.On("FindByDoctorAndDate", mock.Anything, "doctor-1", mondayDate).
			Return([]models.Appointment{
				{SlotTime: "09:00", Status: constvars.AppointmentStatusPending},
				{SlotTime: "09:30", Status: constvars.AppointmentStatusApproved},
				{SlotTime: "10:00", Status: constvars.AppointmentStatusRejected},
			}, nil)

		response, err := uc.GetAvailableSlots(ctx, &requests.GetAvailableSlots{DoctorID: "doctor-1", Date: mondayDate})

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "10:30"}, response.Slots)
	})

	t.Run("off day returns an empty list", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestSlotUsecase(doctorRepo, appointmentRepo, farFromMonday)

		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(mondayDoctor(), nil)

		// 2026-03-03 is a Tuesday.
		response, err := uc.GetAvailableSlots(ctx, &requests.GetAvailableSlots{DoctorID: "doctor-1", Date: "2026-03-03"})

		require.NoError(t, err)
		assert.Empty(t, response.Slots)
		appointmentRepo.AssertNotCalled(t, "FindByDoctorAndDate")
	})

	t.Run("same day filters slots already in the past", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		appointmentRepo := new(MockAppointmentRepository)
		now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
		uc := newTestSlotUsecase(doctorRepo, appointmentRepo, now)

		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(mondayDoctor(), nil)
		appointmentRepo.On("FindByDoctorAndDate", mock.Anything, "doctor-1", mondayDate).
			Return([]models.Appointment{}, nil)

		response, err := uc.GetAvailableSlots(ctx, &requests.GetAvailableSlots{DoctorID: "doctor-1", Date: mondayDate})

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "10:30"}, response.Slots)
	})

	t.Run("unknown doctor has no slots", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestSlotUsecase(doctorRepo, appointmentRepo, farFromMonday)

		doctorRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		response, err := uc.GetAvailableSlots(ctx, &requests.GetAvailableSlots{DoctorID: "ghost", Date: mondayDate})

		require.NoError(t, err)
		assert.Empty(t, response.Slots)
		appointmentRepo.AssertNotCalled(t, "FindByDoctorAndDate")
	})

	t.Run("non positive slot duration fails instead of spinning", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := newTestSlotUsecase(doctorRepo, appointmentRepo, farFromMonday)

		doctor := mondayDoctor()
		doctor.SlotDurationMinutes = 0
		doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(doctor, nil)

		response, err := uc.GetAvailableSlots(ctx, &requests.GetAvailableSlots{DoctorID: "doctor-1", Date: mondayDate})

		assert.Error(t, err)
		assert.Nil(t, response)
	})
}
