package adaptor

import (
	"railway-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Train   *TrainHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Train:   NewTrainHandler(service.Train, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
