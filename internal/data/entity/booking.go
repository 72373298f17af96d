package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

// Only confirmed bookings are created today. The column stays an open enum so
// cancellation/waitlist statuses can be added without a schema change.
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type Booking struct {
	BaseSimple
	UserID           uuid.UUID     `db:"user_id"`
	TrainID          uuid.UUID     `db:"train_id"`
	PassengerName    string        `db:"passenger_name"`
	PassengerEmail   string        `db:"passenger_email"`
	TravelDate       time.Time     `db:"travel_date"`
	SeatsBooked      int           `db:"seats_booked"`
	BookingReference string        `db:"booking_reference"`
	Status           BookingStatus `db:"booking_status"`
	TotalFare        int64         `db:"total_fare"`
}
