// Package main is the entry point for the trip search and optimization service.
//
//	@title						Trip Search and Optimization API
//	@version					1.0.0
//	@description				A travel planning service that searches flights, hotels and activities concurrently and computes the cheapest timing-valid trip plan.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-search/trip-search-and-optimization-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-search/trip-search-and-optimization-system/docs"

	// Application layers
	triphttp "github.com/trip-search/trip-search-and-optimization-system/internal/adapter/http"
	"github.com/trip-search/trip-search-and-optimization-system/internal/adapter/http/middleware"
	"github.com/trip-search/trip-search-and-optimization-system/internal/adapter/provider/serpapi"
	"github.com/trip-search/trip-search-and-optimization-system/internal/config"
	"github.com/trip-search/trip-search-and-optimization-system/internal/infrastructure/logger"
	"github.com/trip-search/trip-search-and-optimization-system/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-search",
	})
	logger.SetGlobal(appLog)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	if cfg.SerpAPI.APIKey == "" {
		appLog.Warn().Msg("SERPAPI_API_KEY is not set, upstream searches will fail")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Request ID, request logging and panic recovery
	middleware.Setup(e, appLog.Logger)

	// Setup routes
	setupRoutes(e, cfg, appLog)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// setupRoutes wires the provider adapters, use case and HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, appLog *logger.Logger) {
	// All three data sources share one SerpAPI client
	client := serpapi.NewClient(cfg.SerpAPI.APIKey, cfg.SerpAPI.BaseURL,
		serpapi.WithLogger(appLog.Logger))

	providers := usecase.Providers{
		Flights:    serpapi.NewFlightAdapter(client),
		Hotels:     serpapi.NewHotelAdapter(client),
		Activities: serpapi.NewActivityAdapter(client),
	}

	ucConfig := &usecase.Config{
		GlobalTimeout:     cfg.Timeouts.GlobalSearch,
		SourceTimeout:     cfg.Timeouts.PerProvider,
		GapHours:          cfg.Trip.HotelCheckInGapHours,
		MinOverallRating:  cfg.Trip.MinOverallRating,
		MinLocationRating: cfg.Trip.MinLocationRating,
	}
	tripUseCase := usecase.NewTripSearchUseCase(providers, ucConfig,
		usecase.WithLogger(appLog.Logger))

	tripHandler := triphttp.NewTripHandler(tripUseCase)
	triphttp.RegisterRoutes(e, tripHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
