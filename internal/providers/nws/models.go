package nws

import (
	"encoding/json"
	"fmt"
)

// PointAPIResponse mirrors the /points/{lat},{lon} response, reduced to the
// fields this service reads.
type PointAPIResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

// ForecastAPIResponse mirrors the gridpoint forecast response.
type ForecastAPIResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// ForecastPeriod is one discrete forecast window ("Tonight", "Monday", ...)
// as issued by the NWS. Array order is chronological and must be preserved.
type ForecastPeriod struct {
	Number                     int64                      `json:"number"`
	Name                       string                     `json:"name"`
	StartTime                  string                     `json:"startTime"`
	EndTime                    string                     `json:"endTime"`
	IsDaytime                  bool                       `json:"isDaytime"`
	Temperature                int64                      `json:"temperature"`
	TemperatureUnit            string                     `json:"temperatureUnit"`
	TemperatureTrend           *string                    `json:"temperatureTrend"`
	ProbabilityOfPrecipitation ProbabilityOfPrecipitation `json:"probabilityOfPrecipitation"`
	Dewpoint                   Dewpoint                   `json:"dewpoint"`
	RelativeHumidity           RelativeHumidity           `json:"relativeHumidity"`
	WindSpeed                  string                     `json:"windSpeed"`
	WindDirection              string                     `json:"windDirection"`
	Icon                       string                     `json:"icon"`
	ShortForecast              string                     `json:"shortForecast"`
	DetailedForecast           string                     `json:"detailedForecast"`
}

// requiredPeriodFields are the fields every period must carry. Only
// temperatureTrend (and the precipitation probability's value) may be
// absent or null.
var requiredPeriodFields = []string{
	"number",
	"name",
	"startTime",
	"endTime",
	"isDaytime",
	"temperature",
	"temperatureUnit",
	"probabilityOfPrecipitation",
	"dewpoint",
	"relativeHumidity",
	"windSpeed",
	"windDirection",
	"icon",
	"shortForecast",
	"detailedForecast",
}

// UnmarshalJSON decodes a period strictly: a period missing a required
// field is malformed and fails the decode rather than being zero-filled.
func (p *ForecastPeriod) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for _, name := range requiredPeriodFields {
		raw, ok := fields[name]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("period missing required field %q", name)
		}
	}

	type forecastPeriod ForecastPeriod
	return json.Unmarshal(data, (*forecastPeriod)(p))
}

type ProbabilityOfPrecipitation struct {
	UnitCode string `json:"unitCode"`
	Value    *int64 `json:"value"`
}

type Dewpoint struct {
	UnitCode string  `json:"unitCode"`
	Value    float64 `json:"value"`
}

type RelativeHumidity struct {
	UnitCode string `json:"unitCode"`
	Value    int64  `json:"value"`
}
