package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if session := args.Get(0); session != nil {
		return session.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func protectedEcho(t *testing.T, wantUserID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSession_ValidToken(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()

	sessionRepo := new(mockSessionRepo)
	sessionRepo.On("FindValidSession", mock.Anything, token.String()).
		Return(&entity.Session{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			UserID:     userID,
			Token:      token,
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil).Once()

	handler := AuthSession(sessionRepo, zap.NewNop())(protectedEcho(t, userID))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book-ticket", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	sessionRepo.AssertExpectations(t)
}

func TestAuthSession_MissingHeader(t *testing.T) {
	sessionRepo := new(mockSessionRepo)
	handler := AuthSession(sessionRepo, zap.NewNop())(protectedEcho(t, uuid.Nil))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/book-ticket", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	sessionRepo.AssertNotCalled(t, "FindValidSession", mock.Anything, mock.Anything)
}

func TestAuthSession_MalformedHeader(t *testing.T) {
	sessionRepo := new(mockSessionRepo)
	handler := AuthSession(sessionRepo, zap.NewNop())(protectedEcho(t, uuid.Nil))

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book-ticket", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

func TestAuthSession_ExpiredOrRevokedSession(t *testing.T) {
	token := uuid.New().String()

	sessionRepo := new(mockSessionRepo)
	sessionRepo.On("FindValidSession", mock.Anything, token).Return(nil, nil).Once()

	handler := AuthSession(sessionRepo, zap.NewNop())(protectedEcho(t, uuid.Nil))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book-ticket", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthSession_StorageError(t *testing.T) {
	token := uuid.New().String()

	sessionRepo := new(mockSessionRepo)
	sessionRepo.On("FindValidSession", mock.Anything, token).
		Return(nil, errors.New("connection refused")).Once()

	handler := AuthSession(sessionRepo, zap.NewNop())(protectedEcho(t, uuid.Nil))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book-ticket", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
