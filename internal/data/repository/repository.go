package repository

import (
	"railway-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Train   TrainRepository
	Booking BookingRepository
}

// NewRepository wires all repositories to the shared connection pool.
// lockTimeoutMS bounds lock waits inside the reservation transaction.
func NewRepository(db database.PgxIface, lockTimeoutMS int, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Train:   NewTrainRepository(db, log),
		Booking: NewBookingRepository(db, lockTimeoutMS, log),
	}
}
