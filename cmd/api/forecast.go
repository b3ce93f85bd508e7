package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michaelpeterswa/nws-forecast-summarizer/internal/forecast"
)

// handleForecast godoc
// @Summary Summarize the forecast for an address
// @Description Geocodes the address, fetches the NWS forecast, and returns a model-written summary as a JSON object with a "summary" key
// @Tags forecast
// @Produce plain
// @Param address query string true "Free-text postal address"
// @Success 200 {string} string "summary JSON"
// @Failure 400 {string} string "address parameter is required"
// @Failure 502 {string} string "upstream failure reason"
// @Router /api/v1/forecast [get]
func (app *App) handleForecast(c *gin.Context) {
	// Counted once per request, before any validation, failures included
	app.metrics.ForecastRequests.Inc()

	address := c.Query("address")

	summary, err := app.forecastService.Summarize(c.Request.Context(), address)
	if err != nil {
		status, message := statusForError(err)
		c.String(status, message)
		return
	}

	// Model output is returned verbatim
	c.String(http.StatusOK, summary)
}

// statusForError maps a pipeline failure to an HTTP status and the coarse
// user-facing reason. Upstream detail stays in the server logs.
func statusForError(err error) (int, string) {
	var pipelineErr *forecast.PipelineError
	if !errors.As(err, &pipelineErr) {
		return http.StatusInternalServerError, "internal error"
	}

	if pipelineErr.Stage == forecast.StageAddress {
		return http.StatusBadRequest, pipelineErr.UserMessage()
	}
	return http.StatusBadGateway, pipelineErr.UserMessage()
}
