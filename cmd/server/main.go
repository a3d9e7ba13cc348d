package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kunci-cimahi/service-booking/internal/application"
	"github.com/kunci-cimahi/service-booking/internal/auth"
	"github.com/kunci-cimahi/service-booking/internal/config"
	"github.com/kunci-cimahi/service-booking/internal/database"
	bookingEvents "github.com/kunci-cimahi/service-booking/internal/events"
	"github.com/kunci-cimahi/service-booking/internal/handler"
	"github.com/kunci-cimahi/service-booking/internal/health"
	"github.com/kunci-cimahi/service-booking/internal/kafka"
	"github.com/kunci-cimahi/service-booking/internal/logger"
	"github.com/kunci-cimahi/service-booking/internal/middleware"
	"github.com/kunci-cimahi/service-booking/internal/notification"
	"github.com/kunci-cimahi/service-booking/internal/realtime"
	"github.com/kunci-cimahi/service-booking/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.BookingModel{},
			&repository.ServiceModel{},
			&repository.TestimonialModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DB.DatabaseURL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	serviceRepo := repository.NewGormServiceRepository(db)
	testimonialRepo := repository.NewGormTestimonialRepository(db)

	// Initialize WhatsApp notifier
	notifier := notification.NewNotifier(cfg.WhatsApp.OperatorNumber, log)

	// Initialize application services
	bookingService := application.NewBookingService(bookingRepo, notifier, kafkaProducer, log)
	catalogService := application.NewCatalogService(serviceRepo, log)
	testimonialService := application.NewTestimonialService(testimonialRepo, log)

	// Initialize the realtime hub and the consumer feeding it
	hub := realtime.NewHub(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.Kafka.GroupPrefix + "booking-service"
	bookingConsumer := bookingEvents.NewBookingEventConsumer(cfg.Kafka.Brokers, groupID, hub, log)
	defer func() { _ = bookingConsumer.Close() }()

	go func() {
		log.Info("starting booking event consumer")
		if err := bookingConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("booking event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	adminBookingHandler := handler.NewAdminBookingHandler(bookingService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	authHandler := handler.NewAuthHandler(cfg.Admin, jwtManager)
	realtimeHandler := handler.NewRealtimeHandler(hub, jwtManager, log)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-booking")
	healthHandler.RegisterRoutes(router)

	// Register routes
	authHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	adminBookingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	catalogHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	testimonialHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	realtimeHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
