package response

import (
	"time"

	"railway-booking/internal/data/entity"
)

type BookingResponse struct {
	ID               string               `json:"id"`
	BookingReference string               `json:"booking_reference"`
	UserID           string               `json:"user_id"`
	TrainID          string               `json:"train_id"`
	PassengerName    string               `json:"passenger_name"`
	PassengerEmail   string               `json:"passenger_email"`
	TravelDate       string               `json:"travel_date"`
	SeatsBooked      int                  `json:"seats_booked"`
	Status           entity.BookingStatus `json:"status"`
	TotalFare        int64                `json:"total_fare"`
	CreatedAt        time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:               booking.ID.String(),
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID.String(),
		TrainID:          booking.TrainID.String(),
		PassengerName:    booking.PassengerName,
		PassengerEmail:   booking.PassengerEmail,
		TravelDate:       booking.TravelDate.Format("2006-01-02"),
		SeatsBooked:      booking.SeatsBooked,
		Status:           booking.Status,
		TotalFare:        booking.TotalFare,
		CreatedAt:        booking.CreatedAt,
	}
}
