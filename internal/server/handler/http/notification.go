package http

import (
	"context"
	"net/http"

	"github.com/akulov/healthmate/internal/models"
)

// NotificationService defines the ledger operations required by the HTTP
// handlers.
type NotificationService interface {
	// List returns the ledger deduplicated by id, newest first.
	List(ctx context.Context) ([]models.Notification, error)
	// Clear empties the ledger.
	Clear(ctx context.Context) error
	// HasUnseen reports whether any entry is unseen.
	HasUnseen(ctx context.Context) (bool, error)
	// UnseenCount returns the number of unseen entries.
	UnseenCount(ctx context.Context) (int, error)
}

// NotificationHandler handles HTTP requests for the notification ledger.
type NotificationHandler struct {
	Notifications NotificationService
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Clear handles DELETE /api/notifications.
func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Unseen handles GET /api/notifications/unseen, returning the unseen flag
// and badge count.
func (h *NotificationHandler) Unseen(w http.ResponseWriter, r *http.Request) {
	unseen, err := h.Notifications.HasUnseen(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := h.Notifications.UnseenCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"unseen": unseen,
		"count":  count,
	})
}
