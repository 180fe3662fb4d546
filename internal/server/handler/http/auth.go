package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akulov/healthmate/internal/models"
)

// AuthService defines the interface for identity and session operations
// required by the HTTP handlers.
type AuthService interface {
	// Register appends a new account to the user list.
	Register(ctx context.Context, username, password, name, photoURI string) error
	// Authenticate verifies credentials and starts the device-wide session.
	Authenticate(ctx context.Context, username, password string) (bool, error)
	// CurrentUser resolves the logged-in user record.
	CurrentUser(ctx context.Context) (*models.User, error)
	// UpdateCurrentUser merges fields into the logged-in user's record.
	UpdateCurrentUser(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	// Logout ends the device-wide session.
	Logout(ctx context.Context) error
}

// SessionResolver resolves the device-wide session to a user record.
// Implemented by AuthService; split out for handlers that only need the
// lookup.
type SessionResolver interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// AuthHandler handles HTTP requests for registration, login, and the
// current session.
type AuthHandler struct {
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	PhotoURI string `json:"photoUri,omitempty"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register.
// It expects a JSON body with non-empty "username" and "password" fields.
// A full user list or a taken username is reported as a conflict.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.AuthService.Register(r.Context(), req.Username, req.Password, req.Name, req.PhotoURI); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// Login handles POST /api/login.
// On a credential match it starts the session and returns the username;
// otherwise it responds 401 without side effects.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ok, err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"user":   req.Username,
	})
}

// Me handles GET /api/me, returning the logged-in user's record.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMe handles PATCH /api/me, merging the given fields into the
// logged-in user's record.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	user, err := h.AuthService.UpdateCurrentUser(r.Context(), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/logout, ending the device-wide session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
