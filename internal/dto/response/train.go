package response

import (
	"railway-booking/internal/data/entity"
)

type TrainResponse struct {
	ID            string `json:"id"`
	TrainNumber   string `json:"train_number"`
	TrainName     string `json:"train_name"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	TotalSeats    int    `json:"total_seats"`
	Fare          int64  `json:"fare"`
}

type AvailabilityResponse struct {
	TotalSeats     int `json:"total_seats"`
	BookedSeats    int `json:"booked_seats"`
	AvailableSeats int `json:"available_seats"`
}

func TrainToResponse(train *entity.Train) TrainResponse {
	return TrainResponse{
		ID:            train.ID.String(),
		TrainNumber:   train.TrainNumber,
		TrainName:     train.TrainName,
		Source:        train.Source,
		Destination:   train.Destination,
		DepartureTime: train.DepartureTime,
		ArrivalTime:   train.ArrivalTime,
		TotalSeats:    train.TotalSeats,
		Fare:          train.Fare,
	}
}

func TrainsToResponse(trains []*entity.Train) []TrainResponse {
	responses := make([]TrainResponse, len(trains))
	for i, train := range trains {
		responses[i] = TrainToResponse(train)
	}
	return responses
}

func AvailabilityToResponse(availability *entity.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		TotalSeats:     availability.TotalSeats,
		BookedSeats:    availability.BookedSeats,
		AvailableSeats: availability.AvailableSeats,
	}
}
