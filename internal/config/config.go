package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log     LogConfig
	API     ServerConfig
	Metrics ServerConfig
	Ollama  OllamaConfig
}

// ServerConfig holds a host/port pair for a listener
type ServerConfig struct {
	Host string
	Port int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OllamaConfig holds the connection details for the Ollama chat service
type OllamaConfig struct {
	Host  string
	Port  int
	Model string
}

// Environment variables consumed by Load. Every one of them is required;
// a missing or malformed value is a startup failure.
const (
	envLogLevel    = "LOG_LEVEL"
	envAPIHost     = "API_HOST"
	envAPIPort     = "API_PORT"
	envMetricsHost = "METRICS_HOST"
	envMetricsPort = "METRICS_PORT"
	envOllamaHost  = "OLLAMA_HOST"
	envOllamaPort  = "OLLAMA_PORT"
	envOllamaModel = "OLLAMA_MODEL"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Optional log format, everything else is mandatory
	v.SetDefault("LOG_FORMAT", "text")

	logLevel, err := getString(v, envLogLevel)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(logLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("%s is not a valid log level: %q", envLogLevel, logLevel)
	}

	apiHost, err := getString(v, envAPIHost)
	if err != nil {
		return nil, err
	}
	apiPort, err := getPort(v, envAPIPort)
	if err != nil {
		return nil, err
	}
	metricsHost, err := getString(v, envMetricsHost)
	if err != nil {
		return nil, err
	}
	metricsPort, err := getPort(v, envMetricsPort)
	if err != nil {
		return nil, err
	}
	ollamaHost, err := getString(v, envOllamaHost)
	if err != nil {
		return nil, err
	}
	ollamaPort, err := getPort(v, envOllamaPort)
	if err != nil {
		return nil, err
	}
	ollamaModel, err := getString(v, envOllamaModel)
	if err != nil {
		return nil, err
	}

	return &Config{
		Log: LogConfig{
			Level:  logLevel,
			Format: v.GetString("LOG_FORMAT"),
		},
		API:     ServerConfig{Host: apiHost, Port: apiPort},
		Metrics: ServerConfig{Host: metricsHost, Port: metricsPort},
		Ollama:  OllamaConfig{Host: ollamaHost, Port: ollamaPort, Model: ollamaModel},
	}, nil
}

func getString(v *viper.Viper, key string) (string, error) {
	val := v.GetString(key)
	if val == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return val, nil
}

func getPort(v *viper.Viper, key string) (int, error) {
	raw, err := getString(v, key)
	if err != nil {
		return 0, err
	}
	port := v.GetInt(key)
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s is not a valid port: %q", key, raw)
	}
	return port, nil
}

// Addr returns the listener address in the format "host:port"
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
