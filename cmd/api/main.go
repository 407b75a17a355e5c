package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/vetify/booking-api/internal/config"
	"github.com/vetify/booking-api/internal/handler"
	adminHandler "github.com/vetify/booking-api/internal/handler/admin"
	authHandler "github.com/vetify/booking-api/internal/handler/auth"
	bookingHandler "github.com/vetify/booking-api/internal/handler/booking"
	directoryHandler "github.com/vetify/booking-api/internal/handler/directory"
	petHandler "github.com/vetify/booking-api/internal/handler/pet"
	"github.com/vetify/booking-api/internal/middleware"
	"github.com/vetify/booking-api/internal/repository/postgres"
	"github.com/vetify/booking-api/internal/router"
	adminService "github.com/vetify/booking-api/internal/service/admin"
	authService "github.com/vetify/booking-api/internal/service/auth"
	bookingService "github.com/vetify/booking-api/internal/service/booking"
	directoryService "github.com/vetify/booking-api/internal/service/directory"
	petService "github.com/vetify/booking-api/internal/service/pet"
	"github.com/vetify/booking-api/pkg/auth"
	"github.com/vetify/booking-api/pkg/blob"
	"github.com/vetify/booking-api/pkg/security"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize blob storage
	blobStore, err := blob.NewS3Store(context.Background(), cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize blob storage")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	petRepo := postgres.NewPetRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	vetRepo := postgres.NewVeterinarianRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)

	// Initialize services
	jwtSvc := auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	authSvc := authService.NewService(userRepo, hasher, jwtSvc)
	petSvc := petService.NewService(petRepo, blobStore)
	bookingSvc := bookingService.NewService(petRepo, appointmentRepo)
	directorySvc := directoryService.NewService(serviceRepo, vetRepo, scheduleRepo)
	adminSvc := adminService.NewService(
		userRepo,
		petRepo,
		appointmentRepo,
		serviceRepo,
		vetRepo,
		scheduleRepo,
		documentRepo,
		blobStore,
	)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	// Initialize handlers
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	petH := petHandler.NewHandler(petSvc)
	bookingH := bookingHandler.NewHandler(bookingSvc)
	directoryH := directoryHandler.NewHandler(directorySvc)
	adminH := adminHandler.NewHandler(adminSvc)

	// Setup router
	r := router.NewRouter(
		authMiddleware,
		h,
		authH,
		petH,
		bookingH,
		directoryH,
		adminH,
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:  cfg.RateLimit.Burst,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

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
