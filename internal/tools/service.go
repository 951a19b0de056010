package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
)

// Tool names exposed to the language model.
const (
	AlertsToolName   = "get_weather_alerts"
	ForecastToolName = "get_weather_forecast"
)

// User-facing messages for each failed stage.
const (
	MsgAlertsUnavailable   = "Unable to fetch alerts or no alerts found."
	MsgNoActiveAlerts      = "No active alerts for this state."
	MsgZipUnavailable      = "Unable to fetch zip data for this location."
	MsgPointsUnavailable   = "Unable to fetch forecast data for this location."
	MsgForecastUnavailable = "Unable to fetch detailed forecast."
)

const (
	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
)

// Service implements the weather tools by chaining gateway lookups.
// It holds no per-call state and is safe for concurrent use.
type Service struct {
	weather   domain.WeatherGateway
	locations domain.LocationGateway
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewService creates a tool service over the given gateways.
func NewService(weather domain.WeatherGateway, locations domain.LocationGateway, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		weather:   weather,
		locations: locations,
		metrics:   metrics,
		logger:    logger,
	}
}

// WeatherAlerts renders the active alerts for a two-letter US state code.
func (s *Service) WeatherAlerts(ctx context.Context, state string) string {
	resp, err := s.weather.Alerts(ctx, state)
	if err != nil {
		return s.unavailable(AlertsToolName, MsgAlertsUnavailable, "state", state, "error", err)
	}
	if resp.Features == nil {
		return s.unavailable(AlertsToolName, MsgAlertsUnavailable, "state", state, "error", "response has no features")
	}
	s.metrics.ToolCalls.WithLabelValues(AlertsToolName, outcomeOK).Inc()

	if len(resp.Features) == 0 {
		return MsgNoActiveAlerts
	}
	return domain.FormatAlerts(resp.Features)
}

// WeatherForecast renders the next forecast periods for a US ZIP code.
func (s *Service) WeatherForecast(ctx context.Context, zipCode int) string {
	zip := FormatZipCode(zipCode)

	loc, err := s.locations.Location(ctx, zip)
	if err != nil {
		return s.unavailable(ForecastToolName, MsgZipUnavailable, "zip", zip, "error", err)
	}
	if len(loc.Places) == 0 {
		return s.unavailable(ForecastToolName, MsgZipUnavailable, "zip", zip, "error", "no places for postal code")
	}
	place := loc.Places[0]

	points, err := s.weather.Points(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return s.unavailable(ForecastToolName, MsgPointsUnavailable, "zip", zip, "error", err)
	}
	forecastURL := points.Properties.Forecast
	if forecastURL == "" {
		return s.unavailable(ForecastToolName, MsgPointsUnavailable, "zip", zip, "error", "point metadata has no forecast URL")
	}

	forecast, err := s.weather.Forecast(ctx, forecastURL)
	if err != nil {
		return s.unavailable(ForecastToolName, MsgForecastUnavailable, "zip", zip, "error", err)
	}
	periods := forecast.Properties.Periods
	if len(periods) == 0 {
		return s.unavailable(ForecastToolName, MsgForecastUnavailable, "zip", zip, "error", "forecast has no periods")
	}

	s.metrics.ToolCalls.WithLabelValues(ForecastToolName, outcomeOK).Inc()
	return domain.FormatForecast(periods)
}

// FormatZipCode renders a ZIP received as an integer in its five-digit form,
// restoring leading zeros (2134 -> "02134").
func FormatZipCode(zipCode int) string {
	return fmt.Sprintf("%05d", zipCode)
}

func (s *Service) unavailable(tool, msg string, attrs ...any) string {
	s.metrics.ToolCalls.WithLabelValues(tool, outcomeUnavailable).Inc()
	s.logger.Info("tool returned unavailable", append([]any{"tool", tool, "message", msg}, attrs...)...)
	return msg
}
