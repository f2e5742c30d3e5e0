package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/repository"
	"lovesync-backend/internal/services"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// statusFor maps layer sentinels to HTTP statuses. Repository errors are
// expected outcomes, not failures; only storage trouble is a 5xx.
func statusFor(err error) int {
	var validation services.ErrValidation
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrAlreadyExists),
		errors.Is(err, repository.ErrPairFull):
		return http.StatusConflict
	case errors.Is(err, kvstore.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps an error to its status and sends it
func respondServiceError(w http.ResponseWriter, err error) {
	respondError(w, err.Error(), statusFor(err))
}
