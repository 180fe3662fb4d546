package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/timeutil"
)

// doctors is the fixed booking catalog.
var doctors = []models.Doctor{
	{ID: 1, Name: "Dr. Laurie Simons", Degree: "MD, DipABLM", Speciality: "Internal Medicine", Photo: "doctors/doctor1.png"},
	{ID: 2, Name: "Dr. James Allen", Degree: "MBBS, PhD", Speciality: "Oncology", Photo: "doctors/doctor2.png"},
	{ID: 3, Name: "Dr. Sarah Johnson", Degree: "DO, MPH", Speciality: "Medical Gastroenterology", Photo: "doctors/doctor3.png"},
}

// AppointmentRepository defines the persistence operations required by
// AppointmentService.
type AppointmentRepository interface {
	// Get returns the user's appointment, or nil when none is stored.
	Get(ctx context.Context, username string) (*models.Appointment, error)
	// Set stores the appointment, replacing any prior record.
	Set(ctx context.Context, username string, a models.Appointment) error
}

// NotificationAppender records a notification in the ledger.
type NotificationAppender interface {
	Append(ctx context.Context, n models.Notification) error
}

// PushDeliverer hands a notification to the external delivery service.
type PushDeliverer interface {
	Deliver(ctx context.Context, token, title, body string, data *models.NotificationData) error
}

// PushTokenReader returns the registered push token, or "" when none exists.
type PushTokenReader interface {
	PushToken(ctx context.Context) (string, error)
}

// AppointmentService implements booking and lookup of the single live
// appointment per user. Booking also records a ledger notification and
// dispatches a push when a token is registered; failures there are logged
// and do not fail the booking.
type AppointmentService struct {
	repo          AppointmentRepository
	notifications NotificationAppender
	push          PushDeliverer
	tokens        PushTokenReader
	log           *zap.Logger
	now           func() time.Time
}

// NewAppointmentService constructs an AppointmentService from its
// collaborators.
func NewAppointmentService(
	repo AppointmentRepository,
	notifications NotificationAppender,
	push PushDeliverer,
	tokens PushTokenReader,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:          repo,
		notifications: notifications,
		push:          push,
		tokens:        tokens,
		log:           log,
		now:           time.Now,
	}
}

// Doctors returns the booking catalog.
func (s *AppointmentService) Doctors() []models.Doctor {
	out := make([]models.Doctor, len(doctors))
	copy(out, doctors)
	return out
}

// Book validates the request, overwrites the user's appointment record, and
// returns the stored record. Date and time must parse as RFC 3339 instants
// or the booking fails with models.ErrInvalidDateTime before anything is
// persisted.
func (s *AppointmentService) Book(ctx context.Context, username string, req models.BookingRequest) (*models.Appointment, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, models.ErrInvalidDateTime
	}
	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		return nil, models.ErrInvalidDateTime
	}

	appt := models.Appointment{
		ID:               strconv.FormatInt(s.now().UnixMilli(), 10),
		DoctorName:       req.DoctorName,
		DoctorDegree:     req.DoctorDegree,
		DoctorSpeciality: req.DoctorSpeciality,
		DoctorPhoto:      req.DoctorPhoto,
		Date:             req.Date,
		Time:             req.Time,
		MeetLink:         req.MeetLink,
		Status:           models.AppointmentStatusUpcoming,
	}
	if err := s.repo.Set(ctx, username, appt); err != nil {
		return nil, err
	}
	s.log.Info("appointment booked",
		zap.String("username", username),
		zap.String("doctor", appt.DoctorName),
		zap.String("id", appt.ID),
	)

	notification := models.Notification{
		ID:    appt.ID,
		Title: "Appointment Booked",
		Message: fmt.Sprintf("Your appointment with %s on %s at %s is booked.",
			appt.DoctorName, timeutil.FormatDate(date), timeutil.FormatTime(at)),
		Date: appt.Date,
		Data: &models.NotificationData{Appointment: &appt},
	}
	if err := s.notifications.Append(ctx, notification); err != nil {
		s.log.Warn("failed to record booking notification", zap.Error(err))
	}

	token, err := s.tokens.PushToken(ctx)
	if err != nil {
		s.log.Warn("failed to read push token", zap.Error(err))
		return &appt, nil
	}
	if token == "" {
		return &appt, nil
	}
	if err := s.push.Deliver(ctx, token, notification.Title, notification.Message, notification.Data); err != nil {
		s.log.Warn("failed to deliver push notification", zap.Error(err))
	}
	return &appt, nil
}

// Get returns the user's appointment, or nil when none has been booked.
func (s *AppointmentService) Get(ctx context.Context, username string) (*models.Appointment, error) {
	return s.repo.Get(ctx, username)
}
