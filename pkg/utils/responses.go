package utils

import (
	"encoding/json"
	"net/http"

	"railway-booking/pkg/apperror"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ErrorBody is the structured error payload: kind plus whatever numbers the
// caller needs to render an actionable message.
type ErrorBody struct {
	Kind           apperror.Kind `json:"kind"`
	Message        string        `json:"message"`
	AvailableSeats *int          `json:"available_seats,omitempty"`
	Retryable      bool          `json:"retryable,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	response := Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, nil, errors)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, false, message, nil, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, false, message, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusConflict, false, message, nil, errors)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, nil, nil)
}

// ResponseAppError maps a classified error to the right status code and the
// structured {kind, message, available_seats} body.
func ResponseAppError(w http.ResponseWriter, err error) {
	body := ErrorBody{
		Kind:    apperror.KindOf(err),
		Message: err.Error(),
	}

	var code int
	switch body.Kind {
	case apperror.KindInvalidRequest:
		code = http.StatusBadRequest
	case apperror.KindUnauthorized:
		code = http.StatusUnauthorized
	case apperror.KindNotFound:
		code = http.StatusNotFound
	case apperror.KindInsufficientCapacity:
		code = http.StatusConflict
		if available, ok := apperror.AvailableSeats(err); ok {
			body.AvailableSeats = &available
		}
	case apperror.KindTransientStorage:
		code = http.StatusServiceUnavailable
		body.Retryable = true
	default:
		code = http.StatusInternalServerError
		body.Message = "Internal server error"
	}

	ResponseJSON(w, code, false, body.Message, nil, body)
}
