package usecase

import (
	"railway-booking/internal/data/repository"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Train   TrainService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Train:   NewTrainService(repo, log),
		Booking: NewBookingService(repo, config, log),
	}
}
