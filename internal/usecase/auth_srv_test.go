package usecase

import (
	"context"
	"testing"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/request"
	"railway-booking/pkg/apperror"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) AuthService {
	repo := &repository.Repository{User: userRepo, Session: sessionRepo}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, zap.NewNop())
}

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "ashaverma",
		Email:    "asha@example.com",
		Password: "secret-password",
		FullName: "Asha Verma",
	}
}

func existingUser(password string) *entity.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     "ashaverma",
		Email:        "asha@example.com",
		PasswordHash: hash,
		FullName:     "Asha Verma",
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, nil).Once()
	userRepo.On("FindByUsername", mock.Anything, "ashaverma").Return(nil, nil).Once()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Once()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

	service := newTestAuthService(userRepo, sessionRepo)

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "ashaverma", resp.Username)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), resp.ExpiresAt, time.Minute)

	// The stored hash is never the raw password
	createdUser := userRepo.Calls[2].Arguments.Get(1).(*entity.User)
	assert.NotEqual(t, "secret-password", createdUser.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret-password", createdUser.PasswordHash))

	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(existingUser("other"), nil).Once()

	service := newTestAuthService(userRepo, new(MockSessionRepository))

	resp, err := service.Register(context.Background(), validRegisterRequest())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err))

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, nil).Once()
	userRepo.On("FindByUsername", mock.Anything, "ashaverma").Return(existingUser("other"), nil).Once()

	service := newTestAuthService(userRepo, new(MockSessionRepository))

	resp, err := service.Register(context.Background(), validRegisterRequest())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err))

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(req *request.RegisterRequest)
	}{
		{name: "short username", mutate: func(req *request.RegisterRequest) { req.Username = "ab" }},
		{name: "bad email", mutate: func(req *request.RegisterRequest) { req.Email = "not-an-email" }},
		{name: "short password", mutate: func(req *request.RegisterRequest) { req.Password = "12345" }},
		{name: "missing full name", mutate: func(req *request.RegisterRequest) { req.FullName = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			service := newTestAuthService(userRepo, new(MockSessionRepository))

			req := validRegisterRequest()
			tc.mutate(req)

			resp, err := service.Register(context.Background(), req)
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err))

			userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLogin_WithEmail(t *testing.T) {
	user := existingUser("secret-password")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil).Once()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

	service := newTestAuthService(userRepo, sessionRepo)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "asha@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.NotEmpty(t, resp.Token)

	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestLogin_WithUsername(t *testing.T) {
	user := existingUser("secret-password")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ashaverma").Return(nil, nil).Once()
	userRepo.On("FindByUsername", mock.Anything, "ashaverma").Return(user, nil).Once()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

	service := newTestAuthService(userRepo, sessionRepo)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "ashaverma",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := existingUser("secret-password")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil).Once()

	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(userRepo, sessionRepo)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "asha@example.com",
		Password: "wrong-password",
	})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ghost").Return(nil, nil).Once()
	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil).Once()

	service := newTestAuthService(userRepo, new(MockSessionRepository))

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "ghost",
		Password: "secret-password",
	})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestLogout(t *testing.T) {
	token := uuid.New()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Revoke", mock.Anything, token.String()).Return(nil).Once()

	service := newTestAuthService(new(MockUserRepository), sessionRepo)

	err := service.Logout(context.Background(), token.String())
	require.NoError(t, err)

	sessionRepo.AssertExpectations(t)
}

func TestLogout_InvalidToken(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	service := newTestAuthService(new(MockUserRepository), sessionRepo)

	err := service.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err))

	sessionRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}
