package repository

import (
	"context"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/storage"
)

// NotificationRepository persists the device-wide notification ledger.
type NotificationRepository struct {
	store storage.Store
}

// NewNotificationRepository creates a NotificationRepository backed by the
// given store.
func NewNotificationRepository(store storage.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// List returns the stored ledger in insertion order, or an empty slice if the
// ledger was never written or has been cleared.
func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	var list []models.Notification
	if _, err := r.store.Get(ctx, keyNotifications, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Save replaces the stored ledger.
func (r *NotificationRepository) Save(ctx context.Context, list []models.Notification) error {
	return r.store.Set(ctx, keyNotifications, list)
}

// Clear replaces the ledger with an empty list.
func (r *NotificationRepository) Clear(ctx context.Context) error {
	return r.store.Set(ctx, keyNotifications, []models.Notification{})
}
