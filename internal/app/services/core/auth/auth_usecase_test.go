package auth

import (
	"context"
	"medipass-service/internal/app/models"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/dto/requests"
	"medipass-service/internal/pkg/exceptions"
	"medipass-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func newTestAuthUsecase() (*authUsecase, *MockUserRepository, *MockSessionService) {
	userRepo := new(MockUserRepository)
	sessionService := new(MockSessionService)
	uc := &authUsecase{
		UserRepository: userRepo,
		SessionService: sessionService,
		Log:            zap.NewNop(),
	}
	return uc, userRepo, sessionService
}

func assertClientError(t *testing.T, err error, clientMessage string) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a *exceptions.CustomError, got %T", err)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registration stores a hashed password", func(t *testing.T) {
		uc, userRepo, _ := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Email == "alice@example.com" &&
				user.Password != "secret-password" &&
				utils.CheckPasswordHash("secret-password", user.Password)
		})).Return("user-1", nil)

		response, err := uc.Register(ctx, &requests.RegisterUser{
			Email:    "alice@example.com",
			Password: "secret-password",
			FullName: "Alice Umutoni",
			Role:     constvars.RolePatient,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", response.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, userRepo, _ := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").
			Return(&models.User{ID: "user-1", Email: "alice@example.com"}, nil)

		_, err := uc.Register(ctx, &requests.RegisterUser{
			Email:    "alice@example.com",
			Password: "secret-password",
			FullName: "Alice Umutoni",
			Role:     constvars.RolePatient,
		})

		assertClientError(t, err, constvars.ErrClientEmailAlreadyExists)
		userRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	storedUser := &models.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		Password: hashed,
		FullName: "Alice Umutoni",
		Role:     constvars.RolePatient,
	}

	t.Run("valid credentials yield a session token", func(t *testing.T) {
		uc, userRepo, sessionService := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)
		sessionService.On("CreateSession", mock.Anything, storedUser).Return("session-token", nil)

		response, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "alice@example.com",
			Password: "secret-password",
		})

		require.NoError(t, err)
		assert.Equal(t, "session-token", response.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, userRepo, sessionService := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)

		_, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		assertClientError(t, err, constvars.ErrClientInvalidEmailOrPassword)
		sessionService.AssertNotCalled(t, "CreateSession")
	})

	t.Run("unknown email reports the same error as a wrong password", func(t *testing.T) {
		uc, userRepo, _ := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := uc.Login(ctx, &requests.LoginUser{
			Email:    "ghost@example.com",
			Password: "secret-password",
		})

		assertClientError(t, err, constvars.ErrClientInvalidEmailOrPassword)
	})
}

func TestLogout(t *testing.T) {
	uc, _, sessionService := newTestAuthUsecase()

	sessionService.On("DeleteSession", mock.Anything, "session-1").Return(nil)

	err := uc.Logout(context.Background(), &models.Session{SessionID: "session-1", UserID: "user-1"})

	require.NoError(t, err)
	sessionService.AssertExpectations(t)
}
