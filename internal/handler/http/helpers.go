package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rxmart/vendormart/internal/gesture"
	"github.com/rxmart/vendormart/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes a JSON response body
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps service errors to status codes. Backend rejection messages
// travel to the vendor verbatim; transport failures collapse to a generic
// connection error.
func writeError(w http.ResponseWriter, err error) {
	var rejection *models.BackendRejectionError

	switch {
	case errors.As(err, &rejection):
		writeJSON(w, http.StatusConflict, errorResponse{Error: rejection.Message})
	case errors.Is(err, models.ErrTransitionInFlight):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "operation already in progress"})
	case errors.Is(err, models.ErrInvalidTransition):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "order cannot take this transition"})
	case errors.Is(err, models.ErrInvalidAmount):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid amount"})
	case errors.Is(err, models.ErrInsufficientFunds):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "amount exceeds available balance"})
	case errors.Is(err, gesture.ErrInvalidWidth):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid drag sample"})
	case errors.Is(err, models.ErrInvalidOrderID), errors.Is(err, models.ErrDataNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrSessionNotFound):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, models.ErrBackendUnavailable):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "connection error, please try again"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
