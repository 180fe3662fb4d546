package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akulov/healthmate/internal/push"
)

// PushTokenWriter persists the device push token.
type PushTokenWriter interface {
	SavePushToken(ctx context.Context, token string) error
}

// EventDispatcher routes inbound notification events from the platform
// layer.
type EventDispatcher interface {
	HandleForeground(ctx context.Context, e push.Event) error
	HandleTap(e push.Event)
}

// PushHandler handles HTTP requests at the push delivery boundary: token
// registration and inbound notification events.
type PushHandler struct {
	Tokens     PushTokenWriter
	Dispatcher EventDispatcher
}

// RegisterToken handles POST /api/push/token, overwriting any previously
// registered token.
func (h *PushHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Tokens.SavePushToken(r.Context(), req.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Event handles POST /api/push/events: the platform layer forwards
// foreground and tap notification events here.
func (h *PushHandler) Event(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
		push.Event
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	switch req.Type {
	case "foreground":
		if err := h.Dispatcher.HandleForeground(r.Context(), req.Event); err != nil {
			writeError(w, err)
			return
		}
	case "tap":
		h.Dispatcher.HandleTap(req.Event)
	default:
		http.Error(w, "unknown event type", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
