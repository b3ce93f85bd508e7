package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/config"
	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/forecast"
	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/metrics"

	_ "github.com/michaelpeterswa/nws-forecast-summarizer/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	metrics         *metrics.Metrics
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *App {
	gin.SetMode(gin.ReleaseMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecast.NewForecastService(cfg, logger),
		metrics:         m,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
