package nws

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/38.89870,-77.03655
// - https://api.weather.gov/gridpoints/LWX/97,71/forecast
const (
	baseURL = "https://api.weather.gov"

	// The NWS usage policy requires an identifying User-Agent; requests
	// without one may be rejected.
	userAgent   = "nws-forecast-summarizer - michael@michaelpeterswa.com"
	contentType = "application/geojson"
)

var (
	// ErrNoForecastURL is returned when a points response carries no
	// forecast resource URL.
	ErrNoForecastURL = errors.New("no forecast URL found")

	// ErrNoPeriods is returned when a forecast response carries no periods.
	ErrNoPeriods = errors.New("no forecast periods found")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "nws-client"),
	}
}

// GetForecastURL resolves coordinates to the URL of the applicable gridpoint
// forecast resource via the points API.
func (c *Client) GetForecastURL(latitude, longitude float64) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/points/%.5f,%.5f", latitude, longitude)

	c.logger.Debug("fetching NWS point", "url", u.String())

	var apiResp PointAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		c.logger.Error("failed to fetch NWS point", "error", err)
		return "", err
	}

	forecastURL := apiResp.Properties.Forecast
	if forecastURL == "" {
		return "", ErrNoForecastURL
	}

	c.logger.Debug("resolved forecast URL", "forecast_url", forecastURL)

	return forecastURL, nil
}

// GetForecastPeriods fetches the ordered forecast periods from a forecast
// resource URL. Decoding is strict: one malformed period fails the call.
func (c *Client) GetForecastPeriods(forecastURL string) ([]ForecastPeriod, error) {
	c.logger.Debug("fetching NWS forecast", "url", forecastURL)

	var apiResp ForecastAPIResponse
	if err := c.get(forecastURL, &apiResp); err != nil {
		c.logger.Error("failed to fetch NWS forecast", "error", err)
		return nil, err
	}

	if len(apiResp.Properties.Periods) == 0 {
		return nil, ErrNoPeriods
	}

	c.logger.Debug("fetched forecast periods", "period_count", len(apiResp.Properties.Periods))

	return apiResp.Properties.Periods, nil
}

// get issues a GET with the headers the NWS API requires and decodes the
// JSON response into out.
func (c *Client) get(rawURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
