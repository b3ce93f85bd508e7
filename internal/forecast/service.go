package forecast

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ollama/ollama/api"

	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/config"
	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/providers/census"
	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/providers/nws"
	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/providers/ollama"
)

// GeocodeProvider resolves a free-text address to coordinates.
type GeocodeProvider interface {
	Geocode(address string) (census.Coordinates, error)
}

// ForecastProvider resolves coordinates to a forecast resource and fetches
// its ordered periods.
type ForecastProvider interface {
	GetForecastURL(latitude, longitude float64) (string, error)
	GetForecastPeriods(forecastURL string) ([]nws.ForecastPeriod, error)
}

// ChatProvider sends a conversation to a chat-completion model.
type ChatProvider interface {
	Chat(ctx context.Context, model string, messages []api.Message) (string, error)
}

// Service turns an address into a natural-language forecast summary.
type Service interface {
	Summarize(ctx context.Context, address string) (string, error)
}

type forecastService struct {
	geocodeProvider  GeocodeProvider
	forecastProvider ForecastProvider
	chatProvider     ChatProvider
	model            string
	logger           *slog.Logger
}

// NewForecastService creates a forecast service backed by the real Census,
// NWS, and Ollama clients.
func NewForecastService(cfg *config.Config, logger *slog.Logger) Service {
	return NewForecastServiceWithProviders(
		census.NewClient(logger),
		nws.NewClient(logger),
		ollama.NewClient(cfg.Ollama.Host, cfg.Ollama.Port, logger),
		cfg.Ollama.Model,
		logger,
	)
}

// NewForecastServiceWithProviders creates a forecast service with custom
// providers. This is useful for testing with mock providers.
func NewForecastServiceWithProviders(
	geocodeProvider GeocodeProvider,
	forecastProvider ForecastProvider,
	chatProvider ChatProvider,
	model string,
	logger *slog.Logger,
) Service {
	return &forecastService{
		geocodeProvider:  geocodeProvider,
		forecastProvider: forecastProvider,
		chatProvider:     chatProvider,
		model:            model,
		logger:           logger.With("component", "forecast-service"),
	}
}

// Summarize runs the pipeline for one request: address → coordinates →
// forecast URL → periods → simplified periods → prompt → summary. The first
// failing stage terminates the request.
func (s *forecastService) Summarize(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", &PipelineError{Stage: StageAddress, Err: ErrMissingAddress}
	}

	coordinates, err := s.geocodeProvider.Geocode(address)
	if err != nil {
		s.logger.Error("failed to geocode address", "address", address, "error", err)
		return "", &PipelineError{Stage: StageGeocode, Err: err}
	}

	forecastURL, err := s.forecastProvider.GetForecastURL(coordinates.Latitude, coordinates.Longitude)
	if err != nil {
		s.logger.Error("failed to get forecast URL",
			"latitude", coordinates.Latitude,
			"longitude", coordinates.Longitude,
			"error", err,
		)
		return "", &PipelineError{Stage: StageLocate, Err: err}
	}

	periods, err := s.forecastProvider.GetForecastPeriods(forecastURL)
	if err != nil {
		s.logger.Error("failed to get forecast periods", "forecast_url", forecastURL, "error", err)
		return "", &PipelineError{Stage: StageFetch, Err: err}
	}

	simplified := simplifyPeriods(periods)

	payload, err := json.Marshal(simplified)
	if err != nil {
		// Not reachable for this data shape
		return "", &PipelineError{Stage: StageSummarize, Err: err}
	}

	s.logger.Debug("requesting summary",
		"period_count", len(simplified),
		"model", s.model,
	)

	summary, err := s.chatProvider.Chat(ctx, s.model, buildMessages(string(payload)))
	if err != nil {
		s.logger.Error("failed to summarize forecast", "model", s.model, "error", err)
		return "", &PipelineError{Stage: StageSummarize, Err: err}
	}

	// The model's text is passed through verbatim; its shape is not
	// re-validated here
	return summary, nil
}
