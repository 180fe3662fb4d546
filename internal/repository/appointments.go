package repository

import (
	"context"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/storage"
)

// AppointmentRepository persists the single live appointment per user under
// a per-username key.
type AppointmentRepository struct {
	store storage.Store
}

// NewAppointmentRepository creates an AppointmentRepository backed by the
// given store.
func NewAppointmentRepository(store storage.Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

// Get returns the user's appointment, or nil when none is stored.
func (r *AppointmentRepository) Get(ctx context.Context, username string) (*models.Appointment, error) {
	var a models.Appointment
	ok, err := r.store.Get(ctx, appointmentKey(username), &a)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Set stores the appointment, unconditionally replacing any prior record.
func (r *AppointmentRepository) Set(ctx context.Context, username string, a models.Appointment) error {
	return r.store.Set(ctx, appointmentKey(username), a)
}
