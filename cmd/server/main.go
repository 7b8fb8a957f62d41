package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamejam-portal-backend/internal/api/routes"
	"gamejam-portal-backend/internal/config"
	"gamejam-portal-backend/internal/database"
	"gamejam-portal-backend/internal/jobs"
	"gamejam-portal-backend/internal/mailer"
	"gamejam-portal-backend/internal/ratelimit"
	"gamejam-portal-backend/internal/repository"
	"gamejam-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "gamejam-portal-backend/docs" // This is needed for swag
)

//	@title			Game Jam Portal Backend API
//	@version		1.0
//	@description	Backend API for the game jam portal: registration, team rosters, messaging, submissions and announcements.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	Organisation Team
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token. The session cookie is accepted as well.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	m, err := mailer.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize mailer:", err)
	}

	// Rate limiting is optional; without Redis every attempt is allowed
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = ratelimit.NewClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logrus.Warnf("Redis unavailable, rate limiting disabled: %v", err)
			rdb = nil
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(cfg, routes.Dependencies{DB: db, Mailer: m, Redis: rdb})
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	invites := service.NewInviteService(
		repository.NewPasswordResetTokenRepository(db),
		cfg.AppBaseURL,
		time.Duration(cfg.InviteTokenTTLHours)*time.Hour,
	)
	scheduler, err := jobs.NewScheduler(invites, time.Duration(cfg.TokenPurgeIntervalMinutes)*time.Minute)
	if err != nil {
		logrus.Fatal("Failed to set up scheduler:", err)
	}
	scheduler.Start()

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	if err := scheduler.Shutdown(); err != nil {
		logrus.Errorf("Scheduler shutdown failed: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
