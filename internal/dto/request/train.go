package request

type SearchTrainsRequest struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

type CheckAvailabilityRequest struct {
	TrainID    string `json:"train_id" validate:"required,uuid4"`
	TravelDate string `json:"travel_date" validate:"required,datetime=2006-01-02"`
}
