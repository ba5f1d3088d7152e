package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/carebase/hospital-portal/internal/config"
	"github.com/carebase/hospital-portal/internal/database"
	"github.com/carebase/hospital-portal/internal/handler"
	appointmentHandler "github.com/carebase/hospital-portal/internal/handler/appointment"
	authHandler "github.com/carebase/hospital-portal/internal/handler/auth"
	billHandler "github.com/carebase/hospital-portal/internal/handler/bill"
	prescriptionHandler "github.com/carebase/hospital-portal/internal/handler/prescription"
	"github.com/carebase/hospital-portal/internal/middleware"
	"github.com/carebase/hospital-portal/internal/repository/postgres"
	"github.com/carebase/hospital-portal/internal/router"
	appointmentService "github.com/carebase/hospital-portal/internal/service/appointment"
	authService "github.com/carebase/hospital-portal/internal/service/auth"
	billService "github.com/carebase/hospital-portal/internal/service/bill"
	prescriptionService "github.com/carebase/hospital-portal/internal/service/prescription"
	"github.com/carebase/hospital-portal/internal/session"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Session.Secret == config.DevSessionSecret {
		log.Warn().Msg("SESSION_SECRET not set, using insecure development secret")
	}

	// Apply schema migrations
	if err := database.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	accountRepo := postgres.NewAccountRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	billRepo := postgres.NewBillRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)

	// Initialize services
	authSvc := authService.NewService(accountRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	billSvc := billService.NewService(billRepo)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo)

	// Session manager and access guard
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.Expiry())
	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// Initialize handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc, sessions)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	billH := billHandler.NewHandler(billSvc)
	prescriptionH := prescriptionHandler.NewHandler(prescriptionSvc)

	// Setup router
	r, err := router.NewRouter(
		authMiddleware,
		authH,
		appointmentH,
		billH,
		prescriptionH,
		h,
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst: cfg.RateLimit.Burst,
			MetricsPrefix:  "hospital_portal",
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
