package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's prometheus registry and collectors.
// It is injected where needed rather than registered globally.
type Metrics struct {
	registry *prometheus.Registry
	logger   *slog.Logger

	// ForecastRequests counts calls to the /api/v1/forecast endpoint,
	// successes and failures alike.
	ForecastRequests prometheus.Counter
}

// New creates a Metrics with its own registry and all collectors registered.
func New(logger *slog.Logger) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		logger:   logger.With("component", "metrics"),
		ForecastRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "forecast_total",
			Help: "times the /api/v1/forecast endpoint was called",
		}),
	}
}

// Handler returns the scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ListenAndServe runs the standalone metrics server. It blocks, so callers
// typically run it in its own goroutine.
func (m *Metrics) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	m.logger.Info("starting metrics server", "addr", addr)
	return http.ListenAndServe(addr, mux)
}
