package repository

import (
	"context"

	"github.com/akulov/healthmate/internal/storage"
)

// MetricsRepository persists the three health metrics, each under its own key.
type MetricsRepository struct {
	store storage.Store
}

// NewMetricsRepository creates a MetricsRepository backed by the given store.
func NewMetricsRepository(store storage.Store) *MetricsRepository {
	return &MetricsRepository{store: store}
}

// BMI returns the stored BMI value and whether one has been recorded.
func (r *MetricsRepository) BMI(ctx context.Context) (float64, bool, error) {
	var v float64
	ok, err := r.store.Get(ctx, keyBMI, &v)
	return v, ok, err
}

// SetBMI stores the BMI value.
func (r *MetricsRepository) SetBMI(ctx context.Context, v float64) error {
	return r.store.Set(ctx, keyBMI, v)
}

// Steps returns the stored step count and whether one has been recorded.
func (r *MetricsRepository) Steps(ctx context.Context) (int, bool, error) {
	var v int
	ok, err := r.store.Get(ctx, keySteps, &v)
	return v, ok, err
}

// SetSteps stores the step count.
func (r *MetricsRepository) SetSteps(ctx context.Context, v int) error {
	return r.store.Set(ctx, keySteps, v)
}

// Sleep returns the stored sleep hours and whether a value has been recorded.
func (r *MetricsRepository) Sleep(ctx context.Context) (float64, bool, error) {
	var v float64
	ok, err := r.store.Get(ctx, keySleep, &v)
	return v, ok, err
}

// SetSleep stores the sleep hours.
func (r *MetricsRepository) SetSleep(ctx context.Context, v float64) error {
	return r.store.Set(ctx, keySleep, v)
}
