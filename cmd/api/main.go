package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/config"
	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/metrics"

	_ "github.com/michaelpeterswa/nws-forecast-summarizer/docs" // Import generated docs
)

// @title nws-forecast-summarizer API
// @version 1.0
// @description Turns a postal address into a natural-language weather forecast summary via the Census geocoder, the NWS forecast API, and an Ollama-hosted language model.
// @BasePath /
func main() {
	// Load .env if present; the real environment still wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Metrics are served on their own listener
	m := metrics.New(logger)
	go func() {
		if err := m.ListenAndServe(cfg.Metrics.Addr()); err != nil {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	// Create app
	app := NewApp(cfg, logger, m)

	// Start server
	logger.Info("starting server", "addr", cfg.API.Addr())
	if err := app.Run(cfg.API.Addr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
