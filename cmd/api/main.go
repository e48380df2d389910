package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"tripboard/internal/config"
	"tripboard/internal/db"
	"tripboard/internal/handlers"
	"tripboard/internal/middleware"
	"tripboard/internal/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// Storage being unreachable is never fatal: the session runs from
	// memory and edits simply will not survive a restart.
	persister := initPersister(cfg, logger)

	docStore := store.New(persister, logger)
	outcome := docStore.Load(context.Background())
	logger.Infow("itinerary loaded", "outcome", outcome.String(), "storage", cfg.Storage)

	// Periodic flush commits the document whenever edits have accumulated.
	flusher := cron.New(cron.WithLocation(time.UTC))
	if _, err := flusher.AddFunc(cfg.FlushSpec, func() {
		docStore.Flush(context.Background())
	}); err != nil {
		logger.Fatalw("invalid flush schedule", "spec", cfg.FlushSpec, "error", err)
	}
	flusher.Start()

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	itineraryHandler := handlers.NewItineraryHandler(docStore, logger)

	v1 := router.Group("/api/v1")
	{
		itinerary := v1.Group("/itinerary")
		{
			itinerary.GET("", itineraryHandler.GetItinerary)
			itinerary.GET("/search", itineraryHandler.SearchDays)
			itinerary.GET("/export.ics", itineraryHandler.ExportCalendar)
			itinerary.POST("/reset", itineraryHandler.ResetItinerary)
			itinerary.POST("/update-event", itineraryHandler.UpdateEvent)
			itinerary.POST("/update-day-notes", itineraryHandler.UpdateDayNotes)
			itinerary.POST("/replace-participants", itineraryHandler.ReplaceParticipants)
			itinerary.POST("/replace-lodging", itineraryHandler.ReplaceLodging)
			itinerary.POST("/replace-tips", itineraryHandler.ReplaceTips)
			itinerary.POST("/ui-state", itineraryHandler.UpdateUIState)
			itinerary.POST("/import", itineraryHandler.ImportCalendar)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: router,
	}

	go func() {
		logger.Infow("server starting", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	flusher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// One final commit so the latest edits survive the restart.
	docStore.Flush(ctx)

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("server forced to shutdown", "error", err)
	}

	logger.Infow("server exited")
}

// initPersister picks the document persister from configuration, degrading
// to the in-memory one when a backend cannot be reached.
func initPersister(cfg *config.Config, logger *zap.SugaredLogger) store.Persister {
	switch cfg.Storage {
	case "redis":
		client, err := db.InitRedis(cfg.Redis)
		if err != nil {
			logger.Warnw("redis unavailable, falling back to in-memory storage", "error", err)
			return store.NewMemoryPersister()
		}
		return store.NewRedisPersister(client)
	case "postgres":
		pool, err := db.InitPostgres(cfg.DatabaseURL)
		if err != nil {
			logger.Warnw("postgres unavailable, falling back to in-memory storage", "error", err)
			return store.NewMemoryPersister()
		}
		return store.NewPostgresPersister(pool)
	default:
		return store.NewMemoryPersister()
	}
}
