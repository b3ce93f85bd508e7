package forecast

// SimplifiedForecastPeriod is the compact projection of an NWS forecast
// period fed to the language model. Field names are serialized snake_case
// to match the calibration example in the prompt.
type SimplifiedForecastPeriod struct {
	Name             string `json:"name"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Temperature      string `json:"temperature"`       // "<value><unit>", e.g. "54F"
	WindSpeed        string `json:"wind_speed"`        // "<speed> <direction>", e.g. "2 mph E"
	RelativeHumidity string `json:"relative_humidity"` // "<value>%", e.g. "80%"
	DetailedForecast string `json:"detailed_forecast"`
}

// fewShotExample is one fixed input/output pair included in every prompt to
// calibrate the model's output format and tone.
type fewShotExample struct {
	Input  string
	Output string
}
