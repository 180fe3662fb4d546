// Package http provides the JSON HTTP handlers and routing for the
// HealthMate API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akulov/healthmate/internal/models"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Store failures surface
// as a generic internal error; the concrete cause is for the logs.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNoSession):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrCapacityExceeded), errors.Is(err, models.ErrDuplicateUsername):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrInvalidDateTime),
		errors.Is(err, models.ErrInvalidNotification),
		errors.Is(err, models.ErrInvalidMetric):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
