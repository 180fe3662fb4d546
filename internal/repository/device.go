package repository

import (
	"context"

	"github.com/akulov/healthmate/internal/storage"
)

// DeviceRepository persists device-level state: the push delivery token.
type DeviceRepository struct {
	store storage.Store
}

// NewDeviceRepository creates a DeviceRepository backed by the given store.
func NewDeviceRepository(store storage.Store) *DeviceRepository {
	return &DeviceRepository{store: store}
}

// PushToken returns the registered push token, or "" when none is stored.
func (r *DeviceRepository) PushToken(ctx context.Context) (string, error) {
	var token string
	if _, err := r.store.Get(ctx, keyPushToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

// SavePushToken stores the push token, overwriting any previous registration.
func (r *DeviceRepository) SavePushToken(ctx context.Context, token string) error {
	return r.store.Set(ctx, keyPushToken, token)
}
