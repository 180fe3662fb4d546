package push

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
)

// Event is an inbound notification event forwarded by the platform layer:
// either a notification received while the app is in the foreground or the
// user tapping a delivered notification.
type Event struct {
	ID      string                   `json:"id"`
	Title   string                   `json:"title"`
	Message string                   `json:"message"`
	Date    string                   `json:"date"`
	Data    *models.NotificationData `json:"data,omitempty"`
}

// Appender records a notification in the ledger.
type Appender interface {
	Append(ctx context.Context, n models.Notification) error
}

// ForegroundHandler observes foreground notification events.
type ForegroundHandler func(Event)

// TapHandler receives the appointment payload of a tapped notification.
type TapHandler func(*models.Appointment)

// Dispatcher routes inbound notification events. Foreground events are
// appended to the ledger and fanned out to registered observers; tap events
// carrying an appointment payload are forwarded opaquely to tap handlers.
type Dispatcher struct {
	ledger Appender
	log    *zap.Logger

	mu         sync.Mutex
	foreground []ForegroundHandler
	tap        []TapHandler
}

// NewDispatcher creates a Dispatcher recording foreground events in the
// given ledger.
func NewDispatcher(ledger Appender, log *zap.Logger) *Dispatcher {
	return &Dispatcher{ledger: ledger, log: log}
}

// OnForeground registers a handler for foreground notification events.
func (d *Dispatcher) OnForeground(h ForegroundHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.foreground = append(d.foreground, h)
}

// OnTap registers a handler for tapped notifications carrying an appointment.
func (d *Dispatcher) OnTap(h TapHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tap = append(d.tap, h)
}

// HandleForeground records the event in the ledger and notifies observers.
// Events without an id get a generated one; events without a date are
// stamped with the current time.
func (d *Dispatcher) HandleForeground(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date == "" {
		e.Date = time.Now().Format(time.RFC3339)
	}
	d.log.Info("notification received in foreground", zap.String("id", e.ID))
	if err := d.ledger.Append(ctx, models.Notification{
		ID:      e.ID,
		Title:   e.Title,
		Message: e.Message,
		Date:    e.Date,
		Data:    e.Data,
	}); err != nil {
		return err
	}
	d.mu.Lock()
	handlers := make([]ForegroundHandler, len(d.foreground))
	copy(handlers, d.foreground)
	d.mu.Unlock()
	for _, h := range handlers {
		h(e)
	}
	return nil
}

// HandleTap forwards the tapped notification's appointment payload to tap
// handlers. Events without an appointment are ignored.
func (d *Dispatcher) HandleTap(e Event) {
	if e.Data == nil || e.Data.Appointment == nil {
		return
	}
	d.log.Info("notification tapped", zap.String("appointment", e.Data.Appointment.ID))
	d.mu.Lock()
	handlers := make([]TapHandler, len(d.tap))
	copy(handlers, d.tap)
	d.mu.Unlock()
	for _, h := range handlers {
		h(e.Data.Appointment)
	}
}
