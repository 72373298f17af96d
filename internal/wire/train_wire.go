package wire

import (
	"railway-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrain(r chi.Router, trainHandler *adaptor.TrainHandler) {
	// Train catalog and availability are public reads
	r.Get("/api/trains", trainHandler.ListTrains)
	r.Get("/api/search-trains", trainHandler.SearchTrains)
	r.Get("/api/check-availability", trainHandler.CheckAvailability)
}
