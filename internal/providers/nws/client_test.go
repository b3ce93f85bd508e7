package nws

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		httpClient: server.Client(),
		baseURL:    server.URL,
		logger:     newTestLogger(),
	}
}

func checkRequiredHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	if got := r.Header.Get("Content-Type"); got != "application/geojson" {
		t.Errorf("Content-Type = %q, want application/geojson", got)
	}
	if got := r.Header.Get("User-Agent"); got != "nws-forecast-summarizer - michael@michaelpeterswa.com" {
		t.Errorf("User-Agent = %q", got)
	}
}

func TestClient_GetForecastURL(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkRequiredHeaders(t, r)

		// Coordinates are formatted to exactly five decimal places
		if r.URL.Path != "/points/38.89870,-77.03655" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(`{"properties": {"forecast": "` + server.URL + `/gridpoints/LWX/97,71/forecast"}}`))
	}))
	defer server.Close()

	forecastURL, err := newTestClient(server).GetForecastURL(38.8987, -77.036553)
	if err != nil {
		t.Fatalf("GetForecastURL() returned error: %v", err)
	}

	want := server.URL + "/gridpoints/LWX/97,71/forecast"
	if forecastURL != want {
		t.Errorf("forecast URL = %q, want %q", forecastURL, want)
	}
}

func TestClient_GetForecastURL_Missing(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty forecast field",
			body: `{"properties": {"forecast": ""}}`,
		},
		{
			name: "missing properties",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server).GetForecastURL(38.8987, -77.0365)
			if !errors.Is(err, ErrNoForecastURL) {
				t.Errorf("GetForecastURL() error = %v, want ErrNoForecastURL", err)
			}
		})
	}
}

const twoPeriodForecast = `{
	"properties": {
		"periods": [
			{
				"number": 1,
				"name": "Tonight",
				"startTime": "2024-06-08T20:00:00-07:00",
				"endTime": "2024-06-09T06:00:00-07:00",
				"isDaytime": false,
				"temperature": 54,
				"temperatureUnit": "F",
				"temperatureTrend": null,
				"probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent", "value": null},
				"dewpoint": {"unitCode": "wmoUnit:degC", "value": 10.5},
				"relativeHumidity": {"unitCode": "wmoUnit:percent", "value": 80},
				"windSpeed": "2 mph",
				"windDirection": "E",
				"icon": "https://api.weather.gov/icons/land/night/bkn?size=medium",
				"shortForecast": "Mostly Cloudy",
				"detailedForecast": "Mostly cloudy, with a low around 54. East wind around 2 mph."
			},
			{
				"number": 2,
				"name": "Sunday",
				"startTime": "2024-06-09T06:00:00-07:00",
				"endTime": "2024-06-09T18:00:00-07:00",
				"isDaytime": true,
				"temperature": 74,
				"temperatureUnit": "F",
				"temperatureTrend": "falling",
				"probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent", "value": 20},
				"dewpoint": {"unitCode": "wmoUnit:degC", "value": 12.2},
				"relativeHumidity": {"unitCode": "wmoUnit:percent", "value": 79},
				"windSpeed": "1 to 6 mph",
				"windDirection": "SW",
				"icon": "https://api.weather.gov/icons/land/day/few?size=medium",
				"shortForecast": "Mostly Sunny",
				"detailedForecast": "Mostly sunny. High near 74. Southwest wind 1 to 6 mph."
			}
		]
	}
}`

func TestClient_GetForecastPeriods(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkRequiredHeaders(t, r)
		if r.URL.Path != "/gridpoints/LWX/97,71/forecast" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(twoPeriodForecast))
	}))
	defer server.Close()

	periods, err := newTestClient(server).GetForecastPeriods(server.URL + "/gridpoints/LWX/97,71/forecast")
	if err != nil {
		t.Fatalf("GetForecastPeriods() returned error: %v", err)
	}

	if len(periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(periods))
	}

	// Order follows the array order
	if periods[0].Name != "Tonight" || periods[1].Name != "Sunday" {
		t.Errorf("period order = [%s, %s], want [Tonight, Sunday]", periods[0].Name, periods[1].Name)
	}

	first := periods[0]
	if first.Temperature != 54 || first.TemperatureUnit != "F" {
		t.Errorf("temperature = %d%s, want 54F", first.Temperature, first.TemperatureUnit)
	}
	if first.RelativeHumidity.Value != 80 {
		t.Errorf("relative humidity = %d, want 80", first.RelativeHumidity.Value)
	}
	if first.ProbabilityOfPrecipitation.Value != nil {
		t.Errorf("precipitation probability = %v, want nil", *first.ProbabilityOfPrecipitation.Value)
	}
	if first.TemperatureTrend != nil {
		t.Errorf("temperature trend = %v, want nil", *first.TemperatureTrend)
	}
	if first.IsDaytime {
		t.Error("Tonight marked as daytime")
	}

	second := periods[1]
	if second.ProbabilityOfPrecipitation.Value == nil || *second.ProbabilityOfPrecipitation.Value != 20 {
		t.Errorf("precipitation probability = %v, want 20", second.ProbabilityOfPrecipitation.Value)
	}
	if second.TemperatureTrend == nil || *second.TemperatureTrend != "falling" {
		t.Errorf("temperature trend = %v, want falling", second.TemperatureTrend)
	}
}

func TestClient_GetForecastPeriods_Empty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty periods array",
			body: `{"properties": {"periods": []}}`,
		},
		{
			name: "missing periods field",
			body: `{"properties": {}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server).GetForecastPeriods(server.URL + "/forecast")
			if !errors.Is(err, ErrNoPeriods) {
				t.Errorf("GetForecastPeriods() error = %v, want ErrNoPeriods", err)
			}
		})
	}
}

func TestClient_GetForecastPeriods_MalformedPeriod(t *testing.T) {
	// One bad element fails the whole fetch; no partial decoding
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"properties": {"periods": [{"number": 1, "name": "Tonight", "temperature": "fifty-four"}]}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).GetForecastPeriods(server.URL + "/forecast")
	if err == nil {
		t.Fatal("GetForecastPeriods() succeeded on malformed period")
	}
	if errors.Is(err, ErrNoPeriods) {
		t.Errorf("GetForecastPeriods() error = ErrNoPeriods, want decode error")
	}
}

func TestClient_GetForecastPeriods_MissingRequiredField(t *testing.T) {
	// A period lacking a required field is malformed, not zero-filled;
	// nothing reaches the simplifier as "0" / "" garbage
	tests := []struct {
		name string
		body string
	}{
		{
			name: "only number and name",
			body: `{"properties": {"periods": [{"number": 1, "name": "Tonight"}]}}`,
		},
		{
			name: "missing temperature",
			body: `{"properties": {"periods": [{"number": 1, "name": "Tonight", "startTime": "2024-06-08T20:00:00-07:00", "endTime": "2024-06-09T06:00:00-07:00", "isDaytime": false, "temperatureUnit": "F", "probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent", "value": null}, "dewpoint": {"unitCode": "wmoUnit:degC", "value": 10.5}, "relativeHumidity": {"unitCode": "wmoUnit:percent", "value": 80}, "windSpeed": "2 mph", "windDirection": "E", "icon": "https://api.weather.gov/icons/land/night/bkn?size=medium", "shortForecast": "Mostly Cloudy", "detailedForecast": "Mostly cloudy."}]}}`,
		},
		{
			name: "null wind speed",
			body: `{"properties": {"periods": [{"number": 1, "name": "Tonight", "startTime": "2024-06-08T20:00:00-07:00", "endTime": "2024-06-09T06:00:00-07:00", "isDaytime": false, "temperature": 54, "temperatureUnit": "F", "probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent", "value": null}, "dewpoint": {"unitCode": "wmoUnit:degC", "value": 10.5}, "relativeHumidity": {"unitCode": "wmoUnit:percent", "value": 80}, "windSpeed": null, "windDirection": "E", "icon": "https://api.weather.gov/icons/land/night/bkn?size=medium", "shortForecast": "Mostly Cloudy", "detailedForecast": "Mostly cloudy."}]}}`,
		},
		{
			name: "missing relative humidity",
			body: `{"properties": {"periods": [{"number": 1, "name": "Tonight", "startTime": "2024-06-08T20:00:00-07:00", "endTime": "2024-06-09T06:00:00-07:00", "isDaytime": false, "temperature": 54, "temperatureUnit": "F", "probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent", "value": null}, "dewpoint": {"unitCode": "wmoUnit:degC", "value": 10.5}, "windSpeed": "2 mph", "windDirection": "E", "icon": "https://api.weather.gov/icons/land/night/bkn?size=medium", "shortForecast": "Mostly Cloudy", "detailedForecast": "Mostly cloudy."}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server).GetForecastPeriods(server.URL + "/forecast")
			if err == nil {
				t.Fatal("GetForecastPeriods() succeeded on incomplete period")
			}
			if errors.Is(err, ErrNoPeriods) {
				t.Errorf("GetForecastPeriods() error = ErrNoPeriods, want decode error")
			}
		})
	}
}

func TestClient_GetForecastPeriods_OptionalFieldsAbsent(t *testing.T) {
	// temperatureTrend and the precipitation probability value are the only
	// optional pieces of a period
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"properties": {"periods": [{"number": 1, "name": "Tonight", "startTime": "2024-06-08T20:00:00-07:00", "endTime": "2024-06-09T06:00:00-07:00", "isDaytime": false, "temperature": 54, "temperatureUnit": "F", "probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent"}, "dewpoint": {"unitCode": "wmoUnit:degC", "value": 10.5}, "relativeHumidity": {"unitCode": "wmoUnit:percent", "value": 80}, "windSpeed": "2 mph", "windDirection": "E", "icon": "https://api.weather.gov/icons/land/night/bkn?size=medium", "shortForecast": "Mostly Cloudy", "detailedForecast": "Mostly cloudy."}]}}`))
	}))
	defer server.Close()

	periods, err := newTestClient(server).GetForecastPeriods(server.URL + "/forecast")
	if err != nil {
		t.Fatalf("GetForecastPeriods() returned error: %v", err)
	}

	if len(periods) != 1 {
		t.Fatalf("got %d periods, want 1", len(periods))
	}
	if periods[0].TemperatureTrend != nil {
		t.Errorf("temperature trend = %v, want nil", *periods[0].TemperatureTrend)
	}
	if periods[0].ProbabilityOfPrecipitation.Value != nil {
		t.Errorf("precipitation probability = %v, want nil", *periods[0].ProbabilityOfPrecipitation.Value)
	}
}

func TestClient_GetForecastPeriods_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	if _, err := newTestClient(server).GetForecastPeriods(server.URL + "/forecast"); err == nil {
		t.Fatal("GetForecastPeriods() succeeded on 503")
	}
}
