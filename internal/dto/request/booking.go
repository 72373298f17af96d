package request

type BookTicketRequest struct {
	TrainID        string `json:"train_id" validate:"required,uuid4"`
	PassengerName  string `json:"passenger_name" validate:"required,min=2,max=100"`
	PassengerEmail string `json:"passenger_email" validate:"required,email"`
	TravelDate     string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	SeatsBooked    int    `json:"seats_booked" validate:"required,gte=1"`
}
