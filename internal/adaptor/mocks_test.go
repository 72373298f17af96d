package adaptor

import (
	"context"

	"railway-booking/internal/dto/request"
	"railway-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*response.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*response.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockTrainService struct {
	mock.Mock
}

func (m *MockTrainService) ListTrains(ctx context.Context) ([]response.TrainResponse, error) {
	args := m.Called(ctx)
	if trains := args.Get(0); trains != nil {
		return trains.([]response.TrainResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTrainService) SearchTrains(ctx context.Context, source, destination string) ([]response.TrainResponse, error) {
	args := m.Called(ctx, source, destination)
	if trains := args.Get(0); trains != nil {
		return trains.([]response.TrainResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTrainService) CheckAvailability(ctx context.Context, trainID, travelDate string) (*response.AvailabilityResponse, error) {
	args := m.Called(ctx, trainID, travelDate)
	if availability := args.Get(0); availability != nil {
		return availability.(*response.AvailabilityResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BookTicket(ctx context.Context, userID string, req *request.BookTicketRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, req)
	if booking := args.Get(0); booking != nil {
		return booking.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, userID, req)
	if bookings := args.Get(0); bookings != nil {
		return bookings.(*response.PaginatedResponse[response.BookingResponse]), args.Error(1)
	}
	return nil, args.Error(1)
}
