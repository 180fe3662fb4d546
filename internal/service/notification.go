package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/timeutil"
)

// Fallback display strings for notifications whose date does not parse.
const (
	unknownDate = "Unknown date"
	unknownTime = "Unknown time"
)

// NotificationRepository defines the persistence operations required by
// NotificationService.
type NotificationRepository interface {
	// List returns the stored ledger in insertion order.
	List(ctx context.Context) ([]models.Notification, error)
	// Save replaces the stored ledger.
	Save(ctx context.Context, list []models.Notification) error
	// Clear replaces the ledger with an empty list.
	Clear(ctx context.Context) error
}

// NotificationService manages the device-wide notification ledger.
//
// The ledger applies two different dedup policies inherited from the original
// behavior: writes skip entries that share an id OR a message with an existing
// entry, while reads dedup by id only. Nothing ever sets seen=true, so the
// unseen flag only clears when the ledger is cleared.
type NotificationService struct {
	repo NotificationRepository
	log  *zap.Logger
}

// NewNotificationService constructs a NotificationService using the provided
// repository.
func NewNotificationService(repo NotificationRepository, log *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

// Append adds a notification to the ledger unless an existing entry shares
// its id or its message text. Display-formatted date and time strings are
// computed at write time. Missing id, title, or message fails with
// models.ErrInvalidNotification.
func (s *NotificationService) Append(ctx context.Context, n models.Notification) error {
	if n.ID == "" || n.Title == "" || n.Message == "" {
		return models.ErrInvalidNotification
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range list {
		if existing.ID == n.ID || existing.Message == n.Message {
			s.log.Debug("duplicate notification skipped", zap.String("id", n.ID))
			return nil
		}
	}
	if t, err := time.Parse(time.RFC3339, n.Date); err == nil {
		n.FormattedDate = timeutil.FormatDate(t)
		n.FormattedTime = timeutil.FormatTime(t)
	} else {
		n.FormattedDate = unknownDate
		n.FormattedTime = unknownTime
	}
	list = append(list, n)
	if err := s.repo.Save(ctx, list); err != nil {
		return err
	}
	s.log.Info("notification added", zap.String("id", n.ID), zap.String("title", n.Title))
	return nil
}

// List returns the ledger deduplicated by id (first occurrence wins) and
// sorted by date descending. Entries with unparseable dates sort last.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(list))
	unique := make([]models.Notification, 0, len(list))
	for _, n := range list {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		unique = append(unique, n)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, unique[i].Date)
		tj, _ := time.Parse(time.RFC3339, unique[j].Date)
		return ti.After(tj)
	})
	return unique, nil
}

// Clear empties the ledger.
func (s *NotificationService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("all notifications cleared")
	return nil
}

// HasUnseen reports whether any ledger entry has seen=false.
func (s *NotificationService) HasUnseen(ctx context.Context) (bool, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range list {
		if !n.Seen {
			return true, nil
		}
	}
	return false, nil
}

// UnseenCount returns the number of ledger entries with seen=false, used as
// the badge count.
func (s *NotificationService) UnseenCount(ctx context.Context) (int, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Seen {
			count++
		}
	}
	return count, nil
}
