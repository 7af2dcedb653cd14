package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/Himani1Sharma/weather-backend/internal/api/http"
	"github.com/Himani1Sharma/weather-backend/internal/config"
	"github.com/Himani1Sharma/weather-backend/internal/store"
	"github.com/Himani1Sharma/weather-backend/internal/weather"
	"github.com/Himani1Sharma/weather-backend/internal/weather/archive"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Persistent store; migrations run on open.
	weatherStore, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	// Archive client with a bounded per-request timeout.
	httpClient := &http.Client{
		Timeout: cfg.ArchiveTimeout,
	}
	archiveClient := archive.NewClient(httpClient, cfg.ArchiveBaseURL)

	// Core service orchestrating ingestion and queries.
	service := weather.NewService(weatherStore, archiveClient)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-backend",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   "Internal server error",
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// API routes.
	httpapi.RegisterRoutes(app, service, cfg.FetchDays)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
