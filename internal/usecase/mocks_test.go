package usecase

import (
	"context"
	"time"

	"railway-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if session := args.Get(0); session != nil {
		return session.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	args := m.Called(ctx, id)
	if train := args.Get(0); train != nil {
		return train.(*entity.Train), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTrainRepository) FindAll(ctx context.Context) ([]*entity.Train, error) {
	args := m.Called(ctx)
	if trains := args.Get(0); trains != nil {
		return trains.([]*entity.Train), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTrainRepository) Search(ctx context.Context, source, destination string) ([]*entity.Train, error) {
	args := m.Called(ctx, source, destination)
	if trains := args.Get(0); trains != nil {
		return trains.([]*entity.Train), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTrainRepository) Availability(ctx context.Context, trainID uuid.UUID, travelDate time.Time) (*entity.Availability, error) {
	args := m.Called(ctx, trainID, travelDate)
	if availability := args.Get(0); availability != nil {
		return availability.(*entity.Availability), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Reserve(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	args := m.Called(ctx, reference)
	if booking := args.Get(0); booking != nil {
		return booking.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
