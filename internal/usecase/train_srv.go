package usecase

import (
	"context"
	"strings"

	"railway-booking/internal/data/repository"
	"railway-booking/internal/dto/response"
	"railway-booking/pkg/apperror"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TrainService interface {
	ListTrains(ctx context.Context) ([]response.TrainResponse, error)
	SearchTrains(ctx context.Context, source, destination string) ([]response.TrainResponse, error)

	// CheckAvailability is the capacity ledger read: seats remaining for a
	// (train, travel date) pair from committed state.
	CheckAvailability(ctx context.Context, trainID, travelDate string) (*response.AvailabilityResponse, error)
}

type trainService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTrainService(repo *repository.Repository, log *zap.Logger) TrainService {
	return &trainService{
		repo: repo,
		log:  log.With(zap.String("service", "train")),
	}
}

func (s *trainService) ListTrains(ctx context.Context) ([]response.TrainResponse, error) {
	trains, err := s.repo.Train.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list trains", zap.Error(err))
		return nil, apperror.Internal("list trains", err)
	}

	return response.TrainsToResponse(trains), nil
}

func (s *trainService) SearchTrains(ctx context.Context, source, destination string) ([]response.TrainResponse, error) {
	if strings.TrimSpace(source) == "" || strings.TrimSpace(destination) == "" {
		return nil, apperror.InvalidRequest("source and destination are required")
	}

	trains, err := s.repo.Train.Search(ctx, source, destination)
	if err != nil {
		s.log.Error("Failed to search trains",
			zap.Error(err),
			zap.String("source", source),
			zap.String("destination", destination),
		)
		return nil, apperror.Internal("search trains", err)
	}

	s.log.Debug("Trains searched",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Int("count", len(trains)),
	)

	return response.TrainsToResponse(trains), nil
}

func (s *trainService) CheckAvailability(ctx context.Context, trainID, travelDate string) (*response.AvailabilityResponse, error) {
	if trainID == "" || travelDate == "" {
		return nil, apperror.InvalidRequest("train ID and travel date are required")
	}

	trainUUID, err := uuid.Parse(trainID)
	if err != nil {
		return nil, apperror.InvalidRequest("invalid train ID format %s", trainID)
	}

	date, err := utils.ParseTravelDate(travelDate)
	if err != nil {
		return nil, apperror.InvalidRequest("invalid travel date %s, expected YYYY-MM-DD", travelDate)
	}

	availability, err := s.repo.Train.Availability(ctx, trainUUID, date)
	if err != nil {
		s.log.Error("Failed to check availability",
			zap.Error(err),
			zap.String("train_id", trainID),
			zap.String("travel_date", travelDate),
		)
		return nil, apperror.Internal("check availability", err)
	}
	if availability == nil {
		return nil, apperror.NotFound("train %s not found", trainID)
	}

	// Advisory read only; the reservation recomputes this under lock.
	s.log.Debug("Availability checked",
		zap.String("train_id", trainID),
		zap.String("travel_date", travelDate),
		zap.Int("available_seats", availability.AvailableSeats),
	)

	return response.AvailabilityToResponse(availability), nil
}
