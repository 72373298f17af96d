package usecase

import (
	"context"
	"strings"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/request"
	"railway-booking/internal/dto/response"
	"railway-booking/pkg/apperror"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// BookTicket executes the atomic check-and-reserve operation and returns
	// the confirmed booking with its reference and total fare.
	BookTicket(ctx context.Context, userID string, req *request.BookTicketRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	// newReference is a field so tests can inject deterministic references
	newReference      func() string
	referenceAttempts int
	log               *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	attempts := config.Booking.ReferenceAttempts
	if attempts <= 0 {
		attempts = 5
	}
	return &bookingService{
		repo:              repo,
		newReference:      utils.GenerateBookingReference,
		referenceAttempts: attempts,
		log:               log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookTicket(ctx context.Context, userID string, req *request.BookTicketRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book ticket validation failed", zap.Any("errors", errs))
		return nil, apperror.InvalidRequest("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.InvalidRequest("invalid user ID format %s", userID)
	}

	trainUUID, err := uuid.Parse(req.TrainID)
	if err != nil {
		return nil, apperror.InvalidRequest("invalid train ID format %s", req.TrainID)
	}

	travelDate, err := utils.ParseTravelDate(req.TravelDate)
	if err != nil {
		return nil, apperror.InvalidRequest("invalid travel date %s, expected YYYY-MM-DD", req.TravelDate)
	}

	if strings.TrimSpace(req.PassengerName) == "" || strings.TrimSpace(req.PassengerEmail) == "" {
		return nil, apperror.InvalidRequest("passenger name and contact are required")
	}

	// A random reference can collide with a stored one; regenerate and rerun
	// the reservation a bounded number of times. Each failed attempt rolls
	// back fully, so no reference is ever consumed by a failed booking.
	for attempt := 1; attempt <= s.referenceAttempts; attempt++ {
		booking := &entity.Booking{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			UserID:           userUUID,
			TrainID:          trainUUID,
			PassengerName:    req.PassengerName,
			PassengerEmail:   req.PassengerEmail,
			TravelDate:       travelDate,
			SeatsBooked:      req.SeatsBooked,
			BookingReference: s.newReference(),
		}

		err := s.repo.Booking.Reserve(ctx, booking)
		if err == nil {
			s.log.Info("Ticket booked",
				zap.String("booking_id", booking.ID.String()),
				zap.String("booking_reference", booking.BookingReference),
				zap.String("user_id", userID),
				zap.String("train_id", req.TrainID),
				zap.String("travel_date", req.TravelDate),
				zap.Int("seats_booked", booking.SeatsBooked),
				zap.Int64("total_fare", booking.TotalFare),
			)
			resp := response.BookingToResponse(booking)
			return &resp, nil
		}

		if apperror.IsKind(err, apperror.KindDuplicateReference) {
			s.log.Warn("Booking reference collision, regenerating",
				zap.String("booking_reference", booking.BookingReference),
				zap.Int("attempt", attempt),
			)
			continue
		}

		return nil, err
	}

	s.log.Error("Booking reference attempts exhausted",
		zap.Int("attempts", s.referenceAttempts),
		zap.String("train_id", req.TrainID),
	)
	return nil, apperror.ReferenceExhausted(s.referenceAttempts)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.InvalidRequest("invalid user ID format %s", userID)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, apperror.Internal("get user bookings", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, apperror.Internal("count user bookings", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}
