// Package service provides the business logic for identity, appointments,
// notifications, health metrics, and tasks, delegating persistence to
// repository interfaces.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
)

// UserRepository defines the persistence operations required by AuthService.
type UserRepository interface {
	// Users returns the full account list.
	Users(ctx context.Context) ([]models.User, error)
	// SaveUsers replaces the stored account list.
	SaveUsers(ctx context.Context, users []models.User) error
	// CurrentUsername returns the logged-in username, or "" when none.
	CurrentUsername(ctx context.Context) (string, error)
	// SetSession records the device-wide logged-in identity.
	SetSession(ctx context.Context, username string) error
	// ClearSession ends the device-wide session.
	ClearSession(ctx context.Context) error
}

// AuthService implements registration, login, and session management.
// The session is a single device-wide flag: LoggedOut → LoggedIn via a
// successful Authenticate, LoggedIn → LoggedOut via Logout.
type AuthService struct {
	repo UserRepository
	log  *zap.Logger
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo UserRepository, log *zap.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

// Register appends a new account to the user list.
// It fails with models.ErrCapacityExceeded when the list already holds
// models.MaxUsers entries and with models.ErrDuplicateUsername when the
// username exactly matches an existing record. A failed attempt leaves the
// stored list unchanged.
func (s *AuthService) Register(ctx context.Context, username, password, name, photoURI string) error {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) >= models.MaxUsers {
		return models.ErrCapacityExceeded
	}
	for _, u := range users {
		if u.Username == username {
			return models.ErrDuplicateUsername
		}
	}
	users = append(users, models.User{
		Username: username,
		Password: password,
		Name:     name,
		PhotoURI: photoURI,
	})
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return err
	}
	s.log.Info("user registered", zap.String("username", username))
	return nil
}

// Authenticate compares the credentials against the stored records.
// On an exact match of both fields it persists the session and returns true;
// otherwise it returns false without side effects. Credentials are plain
// text by design.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			if err := s.repo.SetSession(ctx, username); err != nil {
				return false, err
			}
			s.log.Info("user logged in", zap.String("username", username))
			return true, nil
		}
	}
	return false, nil
}

// CurrentUser resolves the logged-in username against the account list.
// It returns models.ErrNoSession when no session exists or the username no
// longer resolves to a stored record.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	username, err := s.repo.CurrentUsername(ctx)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, models.ErrNoSession
	}
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	// Stale session: the username no longer resolves.
	return nil, models.ErrNoSession
}

// UpdateCurrentUser merges the given fields into the logged-in user's record,
// persists the full list, and returns the updated record.
func (s *AuthService) UpdateCurrentUser(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	username, err := s.repo.CurrentUsername(ctx)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, models.ErrNoSession
	}
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		if upd.Name != nil {
			users[i].Name = *upd.Name
		}
		if upd.Password != nil {
			users[i].Password = *upd.Password
		}
		if upd.PhotoURI != nil {
			users[i].PhotoURI = *upd.PhotoURI
		}
		if err := s.repo.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}
	return nil, models.ErrNoSession
}

// Logout ends the device-wide session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.repo.ClearSession(ctx); err != nil {
		return err
	}
	s.log.Info("user logged out")
	return nil
}
