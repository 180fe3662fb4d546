package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// HealthMate API. It applies JSON content-type enforcement and request
// logging, and mounts all endpoints under /api.
//
// Middleware chain (applied in order):
//  1. RequestID                           — tags each request
//  2. AllowContentType("application/json") — rejects non-JSON bodies
//  3. WithRequestLogging(logger)           — logs each request
func NewRouter(
	authHandler *AuthHandler,
	appointmentHandler *AppointmentHandler,
	notificationHandler *NotificationHandler,
	healthHandler *HealthHandler,
	taskHandler *TaskHandler,
	pushHandler *PushHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))
	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
		r.Patch("/me", authHandler.UpdateMe)

		r.Get("/doctors", appointmentHandler.Doctors)
		r.Post("/appointments", appointmentHandler.Book)
		r.Get("/appointments", appointmentHandler.Get)

		r.Get("/notifications", notificationHandler.List)
		r.Delete("/notifications", notificationHandler.Clear)
		r.Get("/notifications/unseen", notificationHandler.Unseen)

		r.Put("/metrics/bmi", healthHandler.RecordBMI)
		r.Put("/metrics/steps", healthHandler.RecordSteps)
		r.Put("/metrics/sleep", healthHandler.RecordSleep)
		r.Get("/health-score", healthHandler.Score)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks/{id}/toggle", taskHandler.Toggle)

		r.Post("/push/token", pushHandler.RegisterToken)
		r.Post("/push/events", pushHandler.Event)
	})

	return r
}
