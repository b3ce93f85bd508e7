package forecast

import (
	"fmt"

	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/providers/nws"
)

// simplifyPeriods projects each forecast period into its LLM-friendly form,
// preserving order. It is defined for every valid period; there is no error
// path.
func simplifyPeriods(periods []nws.ForecastPeriod) []SimplifiedForecastPeriod {
	simplified := make([]SimplifiedForecastPeriod, 0, len(periods))

	for _, period := range periods {
		simplified = append(simplified, SimplifiedForecastPeriod{
			Name:             period.Name,
			StartTime:        period.StartTime,
			EndTime:          period.EndTime,
			Temperature:      fmt.Sprintf("%d%s", period.Temperature, period.TemperatureUnit),
			WindSpeed:        fmt.Sprintf("%s %s", period.WindSpeed, period.WindDirection),
			RelativeHumidity: fmt.Sprintf("%d%%", period.RelativeHumidity.Value),
			DetailedForecast: period.DetailedForecast,
		})
	}

	return simplified
}
