package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akulov/healthmate/internal/models"
)

// TaskService defines the to-do operations required by the HTTP handlers.
type TaskService interface {
	// TasksForUser returns the user's task list, seeding defaults on first
	// access.
	TasksForUser(ctx context.Context, username string, appointment *models.Appointment) ([]models.Task, error)
	// Toggle flips the done flag of the given task.
	Toggle(ctx context.Context, username, taskID string) ([]models.Task, error)
}

// AppointmentReader returns the user's appointment, or nil when none exists.
type AppointmentReader interface {
	Get(ctx context.Context, username string) (*models.Appointment, error)
}

// TaskHandler handles HTTP requests for the per-user to-do list.
type TaskHandler struct {
	Tasks        TaskService
	Appointments AppointmentReader
	Sessions     SessionResolver
}

// List handles GET /api/tasks for the logged-in user. The doctor task title
// reflects the current appointment without being persisted.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
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
	tasks, err := h.Tasks.TasksForUser(r.Context(), user.Username, appt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Toggle handles POST /api/tasks/{id}/toggle for the logged-in user.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	tasks, err := h.Tasks.Toggle(r.Context(), user.Username, taskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}
