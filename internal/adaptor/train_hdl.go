package adaptor

import (
	"net/http"

	"railway-booking/internal/usecase"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type TrainHandler struct {
	service usecase.TrainService
	log     *zap.Logger
}

func NewTrainHandler(service usecase.TrainService, log *zap.Logger) *TrainHandler {
	return &TrainHandler{
		service: service,
		log:     log.With(zap.String("handler", "train")),
	}
}

// ListTrains handles GET /api/trains
func (h *TrainHandler) ListTrains(w http.ResponseWriter, r *http.Request) {
	trains, err := h.service.ListTrains(r.Context())
	if err != nil {
		h.log.Error("Failed to list trains", zap.Error(err))
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", trains)
}

// SearchTrains handles GET /api/search-trains?source=...&destination=...
func (h *TrainHandler) SearchTrains(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	source := query.Get("source")
	destination := query.Get("destination")

	trains, err := h.service.SearchTrains(r.Context(), source, destination)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", trains)
}

// CheckAvailability handles GET /api/check-availability?train_id=...&travel_date=...
func (h *TrainHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	trainID := query.Get("train_id")
	travelDate := query.Get("travel_date")

	availability, err := h.service.CheckAvailability(r.Context(), trainID, travelDate)
	if err != nil {
		utils.ResponseAppError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
