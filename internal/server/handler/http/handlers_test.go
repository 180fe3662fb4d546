package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/push"
	handler "github.com/akulov/healthmate/internal/server/handler/http"
	"github.com/akulov/healthmate/internal/service"
)

// Function-field fakes. A nil field means the operation is not expected in
// that test.

type fakeAuthService struct {
	register     func(ctx context.Context, username, password, name, photoURI string) error
	authenticate func(ctx context.Context, username, password string) (bool, error)
	currentUser  func(ctx context.Context) (*models.User, error)
	update       func(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	logout       func(ctx context.Context) error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password, name, photoURI string) error {
	return f.register(ctx, username, password, name, photoURI)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	return f.authenticate(ctx, username, password)
}

func (f *fakeAuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	if f.currentUser == nil {
		return nil, models.ErrNoSession
	}
	return f.currentUser(ctx)
}

func (f *fakeAuthService) UpdateCurrentUser(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	return f.update(ctx, upd)
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	return f.logout(ctx)
}

// loggedIn resolves every session lookup to the given username.
func loggedIn(username string) *fakeAuthService {
	return &fakeAuthService{
		currentUser: func(context.Context) (*models.User, error) {
			return &models.User{Username: username, Name: "Alice"}, nil
		},
	}
}

type fakeAppointmentService struct {
	doctors []models.Doctor
	book    func(ctx context.Context, username string, req models.BookingRequest) (*models.Appointment, error)
	get     func(ctx context.Context, username string) (*models.Appointment, error)
}

func (f *fakeAppointmentService) Doctors() []models.Doctor { return f.doctors }

func (f *fakeAppointmentService) Book(ctx context.Context, username string, req models.BookingRequest) (*models.Appointment, error) {
	return f.book(ctx, username, req)
}

func (f *fakeAppointmentService) Get(ctx context.Context, username string) (*models.Appointment, error) {
	if f.get == nil {
		return nil, nil
	}
	return f.get(ctx, username)
}

type fakeNotificationService struct {
	list        func(ctx context.Context) ([]models.Notification, error)
	clear       func(ctx context.Context) error
	hasUnseen   func(ctx context.Context) (bool, error)
	unseenCount func(ctx context.Context) (int, error)
}

func (f *fakeNotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return f.list(ctx)
}

func (f *fakeNotificationService) Clear(ctx context.Context) error { return f.clear(ctx) }

func (f *fakeNotificationService) HasUnseen(ctx context.Context) (bool, error) {
	return f.hasUnseen(ctx)
}

func (f *fakeNotificationService) UnseenCount(ctx context.Context) (int, error) {
	return f.unseenCount(ctx)
}

type fakeHealthService struct {
	recordBMI   func(ctx context.Context, weightKg, heightCm float64) (float64, error)
	recordSteps func(ctx context.Context, steps int) error
	recordSleep func(ctx context.Context, hours float64) error
	snapshot    func(ctx context.Context) (service.Snapshot, error)
}

func (f *fakeHealthService) RecordBMI(ctx context.Context, weightKg, heightCm float64) (float64, error) {
	return f.recordBMI(ctx, weightKg, heightCm)
}

func (f *fakeHealthService) RecordSteps(ctx context.Context, steps int) error {
	return f.recordSteps(ctx, steps)
}

func (f *fakeHealthService) RecordSleep(ctx context.Context, hours float64) error {
	return f.recordSleep(ctx, hours)
}

func (f *fakeHealthService) Snapshot(ctx context.Context) (service.Snapshot, error) {
	return f.snapshot(ctx)
}

type fakeTaskService struct {
	tasksForUser func(ctx context.Context, username string, appointment *models.Appointment) ([]models.Task, error)
	toggle       func(ctx context.Context, username, taskID string) ([]models.Task, error)
}

func (f *fakeTaskService) TasksForUser(ctx context.Context, username string, appointment *models.Appointment) ([]models.Task, error) {
	return f.tasksForUser(ctx, username, appointment)
}

func (f *fakeTaskService) Toggle(ctx context.Context, username, taskID string) ([]models.Task, error) {
	return f.toggle(ctx, username, taskID)
}

type fakeTokenWriter struct {
	saved []string
	err   error
}

func (f *fakeTokenWriter) SavePushToken(ctx context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, token)
	return nil
}

type fakeEventDispatcher struct {
	foreground []push.Event
	taps       []push.Event
	err        error
}

func (f *fakeEventDispatcher) HandleForeground(ctx context.Context, e push.Event) error {
	if f.err != nil {
		return f.err
	}
	f.foreground = append(f.foreground, e)
	return nil
}

func (f *fakeEventDispatcher) HandleTap(e push.Event) {
	f.taps = append(f.taps, e)
}

// testServices bundles the fakes behind a router. Zero-value fields get
// inert defaults.
type testServices struct {
	auth          *fakeAuthService
	appointments  *fakeAppointmentService
	notifications *fakeNotificationService
	health        *fakeHealthService
	tasks         *fakeTaskService
	tokens        *fakeTokenWriter
	dispatcher    *fakeEventDispatcher
}

func newTestRouter(s testServices) http.Handler {
	if s.auth == nil {
		s.auth = &fakeAuthService{}
	}
	if s.appointments == nil {
		s.appointments = &fakeAppointmentService{}
	}
	if s.notifications == nil {
		s.notifications = &fakeNotificationService{}
	}
	if s.health == nil {
		s.health = &fakeHealthService{}
	}
	if s.tasks == nil {
		s.tasks = &fakeTaskService{}
	}
	if s.tokens == nil {
		s.tokens = &fakeTokenWriter{}
	}
	if s.dispatcher == nil {
		s.dispatcher = &fakeEventDispatcher{}
	}
	return handler.NewRouter(
		&handler.AuthHandler{AuthService: s.auth},
		&handler.AppointmentHandler{Appointments: s.appointments, Sessions: s.auth},
		&handler.NotificationHandler{Notifications: s.notifications},
		&handler.HealthHandler{Health: s.health},
		&handler.TaskHandler{Tasks: s.tasks, Appointments: s.appointments, Sessions: s.auth},
		&handler.PushHandler{Tokens: s.tokens, Dispatcher: s.dispatcher},
		zap.NewNop(),
	)
}

// doJSON runs a request with a JSON content type against the router.
func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
