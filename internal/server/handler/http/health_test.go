package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/service"
)

func TestRecordBMI_Handler(t *testing.T) {
	var gotWeight, gotHeight float64
	health := &fakeHealthService{
		recordBMI: func(_ context.Context, weightKg, heightCm float64) (float64, error) {
			gotWeight, gotHeight = weightKg, heightCm
			return 22.857142857142858, nil
		},
	}
	router := newTestRouter(testServices{health: health})

	rr := doJSON(t, router, http.MethodPut, "/api/metrics/bmi", `{"weightKg":70,"heightCm":175}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(70), gotWeight)
	assert.Equal(t, float64(175), gotHeight)
	assert.JSONEq(t, `{"bmi":22.857142857142858}`, rr.Body.String())
}

func TestRecordBMI_Invalid(t *testing.T) {
	health := &fakeHealthService{
		recordBMI: func(context.Context, float64, float64) (float64, error) {
			return 0, models.ErrInvalidMetric
		},
	}
	router := newTestRouter(testServices{health: health})

	rr := doJSON(t, router, http.MethodPut, "/api/metrics/bmi", `{"weightKg":70,"heightCm":0}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecordSteps_Handler(t *testing.T) {
	var gotSteps int
	health := &fakeHealthService{
		recordSteps: func(_ context.Context, steps int) error {
			gotSteps = steps
			return nil
		},
	}
	router := newTestRouter(testServices{health: health})

	rr := doJSON(t, router, http.MethodPut, "/api/metrics/steps", `{"steps":5000}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5000, gotSteps)
}

func TestRecordSleep_Invalid(t *testing.T) {
	health := &fakeHealthService{
		recordSleep: func(context.Context, float64) error {
			return models.ErrInvalidMetric
		},
	}
	router := newTestRouter(testServices{health: health})

	rr := doJSON(t, router, http.MethodPut, "/api/metrics/sleep", `{"hours":25}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthScore(t *testing.T) {
	bmi, steps, sleep := 22.0, 5000, 8.0
	health := &fakeHealthService{
		snapshot: func(context.Context) (service.Snapshot, error) {
			return service.Snapshot{BMI: &bmi, Steps: &steps, Sleep: &sleep, Score: 3000}, nil
		},
	}
	router := newTestRouter(testServices{health: health})

	rr := doJSON(t, router, http.MethodGet, "/api/health-score", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"bmi":22,"steps":5000,"sleep":8,"score":3000}`, rr.Body.String())
}

func TestHealthScore_MissingMetricsOmitted(t *testing.T) {
	health := &fakeHealthService{
		snapshot: func(context.Context) (service.Snapshot, error) {
			return service.Snapshot{Score: 0}, nil
		},
	}
	router := newTestRouter(testServices{health: health})

	rr := doJSON(t, router, http.MethodGet, "/api/health-score", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"score":0}`, rr.Body.String())
}
