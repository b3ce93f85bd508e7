package census

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://geocoding.geo.census.gov/geocoder/
// Sample request:
// - https://geocoding.geo.census.gov/geocoder/locations/onelineaddress?address=1600+Pennsylvania+Ave+NW&benchmark=2020&format=json
const (
	baseURL   = "https://geocoding.geo.census.gov"
	benchmark = "2020"
)

// ErrNoMatch is returned when the geocoder finds no match for an address.
var ErrNoMatch = errors.New("no address matches found")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "census-client"),
	}
}

// Geocode resolves a free-text address to the coordinates of its first
// geocoder match.
func (c *Client) Geocode(address string) (Coordinates, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/geocoder/locations/onelineaddress"
	q := u.Query()
	q.Set("address", address)
	q.Set("benchmark", benchmark)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("geocoding address", "address", address)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch geocoder response", "error", err)
		return Coordinates{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocoder API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return Coordinates{}, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GeocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode geocoder response", "error", err)
		return Coordinates{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Result.AddressMatches) == 0 {
		c.logger.Debug("no geocoder matches", "address", address)
		return Coordinates{}, ErrNoMatch
	}

	// The first match is the geocoder's best candidate
	match := apiResp.Result.AddressMatches[0]

	c.logger.Debug("geocoded address",
		"matched_address", match.MatchedAddress,
		"latitude", match.Coordinates.Latitude,
		"longitude", match.Coordinates.Longitude,
	)

	return match.Coordinates, nil
}
