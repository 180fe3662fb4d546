package repository

import (
	"context"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/storage"
)

// UserRepository persists the account list and the device-wide session flags.
type UserRepository struct {
	store storage.Store
}

// NewUserRepository creates a UserRepository backed by the given store.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Users returns the full account list, or an empty slice if none exists yet.
func (r *UserRepository) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := r.store.Get(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the stored account list.
func (r *UserRepository) SaveUsers(ctx context.Context, users []models.User) error {
	return r.store.Set(ctx, keyUsers, users)
}

// CurrentUsername returns the logged-in username, or "" when no session exists.
func (r *UserRepository) CurrentUsername(ctx context.Context) (string, error) {
	var username string
	if _, err := r.store.Get(ctx, keyCurrentUser, &username); err != nil {
		return "", err
	}
	return username, nil
}

// SetSession records username as the device-wide logged-in identity.
// The two keys are written one after the other; there is no atomicity
// between them.
func (r *UserRepository) SetSession(ctx context.Context, username string) error {
	if err := r.store.Set(ctx, keyCurrentUser, username); err != nil {
		return err
	}
	return r.store.Set(ctx, keyUserLoggedIn, true)
}

// ClearSession ends the device-wide session.
func (r *UserRepository) ClearSession(ctx context.Context) error {
	if err := r.store.Set(ctx, keyUserLoggedIn, false); err != nil {
		return err
	}
	return r.store.Remove(ctx, keyCurrentUser)
}
