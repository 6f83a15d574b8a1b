package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/adventcare/registry-backend/internal/config"
	"github.com/adventcare/registry-backend/internal/database"
	"github.com/adventcare/registry-backend/internal/handlers"
	"github.com/adventcare/registry-backend/internal/middleware"
	"github.com/adventcare/registry-backend/internal/repositories"
	"github.com/adventcare/registry-backend/internal/scheduler"
	"github.com/adventcare/registry-backend/internal/services"
	"github.com/adventcare/registry-backend/pkg/logger"
	"github.com/adventcare/registry-backend/pkg/metrics"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger := logger.New(cfg.Logger.Level, cfg.Logger.Format)

	// Connect to database and apply migrations
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(db, &cfg.Database); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize repositories
	registrationRepo := repositories.NewRegistrationRepository(db)
	adminLogRepo := repositories.NewAdminLogRepository(db)

	// Initialize services
	registrationService := services.NewRegistrationService(registrationRepo, adminLogRepo, appLogger)
	statsService := services.NewStatsService(registrationRepo, appLogger)

	// Initialize scheduler
	cronScheduler := scheduler.NewCronScheduler(statsService, cfg.Scheduler.StatsRefreshSpec, appLogger)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Initialize HTTP handlers
	registrationHandler := handlers.NewRegistrationHandler(registrationService, appLogger)
	statsHandler := handlers.NewStatsHandler(statsService, appLogger)
	healthHandler := handlers.NewHealthHandler(db, appLogger, version)

	// Setup Gin router
	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(appLogger))
	router.Use(middleware.Recovery(appLogger))
	router.Use(middleware.Security())
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout, appLogger))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, appLogger)
	router.Use(rateLimiter.Middleware())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID", middleware.AdminKeyHeader},
		AllowCredentials: true,
	})
	router.Use(func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		ctx.Next()
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/registrations", registrationHandler.Register)
		api.GET("/registrations/approved", registrationHandler.GetApproved)
		api.GET("/health", healthHandler.Health)

		admin := api.Group("", middleware.AdminAuth(cfg.Admin.APIKey, appLogger))
		{
			admin.GET("/registrations/pending", registrationHandler.GetPending)
			admin.POST("/registrations/status", registrationHandler.UpdateStatus)
			admin.GET("/stats", statsHandler.GetStats)
		}
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		appLogger.WithField("addr", serverAddr).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
