// Package main initializes and starts the HealthMate API server, setting up
// configuration, logging, the key-value store, repositories, services, and
// handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/config"
	"github.com/akulov/healthmate/internal/logger"
	"github.com/akulov/healthmate/internal/models"
	"github.com/akulov/healthmate/internal/push"
	"github.com/akulov/healthmate/internal/repository"
	"github.com/akulov/healthmate/internal/server/handler/http"
	"github.com/akulov/healthmate/internal/service"
	"github.com/akulov/healthmate/internal/storage"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Select the store backend: PostgreSQL when a DSN is configured,
	// otherwise the local file store.
	var store storage.Store
	if options.DatabaseDSN != "" {
		pgStore, err := storage.NewPostgresStore(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init postgres store", zap.Error(err))
		}
		store = pgStore
		zapLogger.Info("using postgres store")
	} else {
		fileStore, err := storage.NewFileStore(options.StorageFile)
		if err != nil {
			zapLogger.Fatal("cannot init file store", zap.Error(err))
		}
		store = fileStore
		zapLogger.Info("using file store", zap.String("path", options.StorageFile))
	}

	// Initialize repositories over the store.
	userRepo := repository.NewUserRepository(store)
	appointmentRepo := repository.NewAppointmentRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)
	taskRepo := repository.NewTaskRepository(store)
	metricsRepo := repository.NewMetricsRepository(store)
	deviceRepo := repository.NewDeviceRepository(store)

	// Initialize business-logic services and the push boundary.
	authService := service.NewAuthService(userRepo, zapLogger)
	notificationService := service.NewNotificationService(notificationRepo, zapLogger)
	pushClient := push.NewClient(options.PushEndpoint, zapLogger)
	appointmentService := service.NewAppointmentService(
		appointmentRepo, notificationService, pushClient, deviceRepo, zapLogger,
	)
	healthService := service.NewHealthService(metricsRepo)
	taskService := service.NewTaskService(taskRepo, zapLogger)

	// Route inbound notification events; tapped appointments are handed to
	// the presentation layer.
	dispatcher := push.NewDispatcher(notificationService, zapLogger)
	dispatcher.OnTap(func(a *models.Appointment) {
		zapLogger.Info("opening appointment details",
			zap.String("id", a.ID),
			zap.String("doctor", a.DoctorName),
		)
	})

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	appointmentHandler := &http.AppointmentHandler{
		Appointments: appointmentService,
		Sessions:     authService,
	}
	notificationHandler := &http.NotificationHandler{Notifications: notificationService}
	healthHandler := &http.HealthHandler{Health: healthService}
	taskHandler := &http.TaskHandler{
		Tasks:        taskService,
		Appointments: appointmentService,
		Sessions:     authService,
	}
	pushHandler := &http.PushHandler{Tokens: deviceRepo, Dispatcher: dispatcher}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		appointmentHandler,
		notificationHandler,
		healthHandler,
		taskHandler,
		pushHandler,
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
