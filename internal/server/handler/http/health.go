package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akulov/healthmate/internal/service"
)

// HealthService defines the metric and score operations required by the
// HTTP handlers.
type HealthService interface {
	// RecordBMI derives and stores BMI from weight (kg) and height (cm).
	RecordBMI(ctx context.Context, weightKg, heightCm float64) (float64, error)
	// RecordSteps stores the step count.
	RecordSteps(ctx context.Context, steps int) error
	// RecordSleep stores the sleep hours.
	RecordSleep(ctx context.Context, hours float64) error
	// Snapshot returns the metric state with the derived score.
	Snapshot(ctx context.Context) (service.Snapshot, error)
}

// HealthHandler handles HTTP requests for health metrics and the derived
// score.
type HealthHandler struct {
	Health HealthService
}

// RecordBMI handles PUT /api/metrics/bmi.
func (h *HealthHandler) RecordBMI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeightKg float64 `json:"weightKg"`
		HeightCm float64 `json:"heightCm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	bmi, err := h.Health.RecordBMI(r.Context(), req.WeightKg, req.HeightCm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"bmi": bmi})
}

// RecordSteps handles PUT /api/metrics/steps.
func (h *HealthHandler) RecordSteps(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Steps int `json:"steps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Health.RecordSteps(r.Context(), req.Steps); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RecordSleep handles PUT /api/metrics/sleep.
func (h *HealthHandler) RecordSleep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hours float64 `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Health.RecordSleep(r.Context(), req.Hours); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Score handles GET /api/health-score, returning the metric snapshot with
// the derived score.
func (h *HealthHandler) Score(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Health.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
