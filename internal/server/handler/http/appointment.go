package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akulov/healthmate/internal/models"
)

// AppointmentService defines the appointment operations required by the
// HTTP handlers.
type AppointmentService interface {
	// Doctors returns the booking catalog.
	Doctors() []models.Doctor
	// Book overwrites the user's appointment with a new record.
	Book(ctx context.Context, username string, req models.BookingRequest) (*models.Appointment, error)
	// Get returns the user's appointment, or nil when none is booked.
	Get(ctx context.Context, username string) (*models.Appointment, error)
}

// AppointmentHandler handles HTTP requests for the doctor catalog and the
// per-user appointment record.
type AppointmentHandler struct {
	Appointments AppointmentService
	Sessions     SessionResolver
}

// Doctors handles GET /api/doctors.
func (h *AppointmentHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Appointments.Doctors())
}

// Book handles POST /api/appointments for the logged-in user.
// Date and time must be RFC 3339 instants.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DoctorName == "" || req.Date == "" || req.Time == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	appt, err := h.Appointments.Book(r.Context(), user.Username, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

// Get handles GET /api/appointments for the logged-in user.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	appt, err := h.Appointments.Get(r.Context(), user.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	if appt == nil {
		http.Error(w, "no appointment", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}
