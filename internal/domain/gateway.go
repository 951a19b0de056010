package domain

import "context"

// Fetcher performs a single GET and decodes the JSON body into out.
// Every failure (transport, status, decode) is reported as a non-nil error;
// callers treat it as "data unavailable" without inspecting the cause.
type Fetcher interface {
	Get(ctx context.Context, url, accept string, out any) error
}

// WeatherGateway looks up weather data for the tools.
type WeatherGateway interface {
	// Alerts returns active alerts for a two-letter state code.
	Alerts(ctx context.Context, state string) (AlertsResponse, error)

	// Points returns grid metadata, including the forecast URL, for a coordinate.
	Points(ctx context.Context, lat, lon string) (PointMetadata, error)

	// Forecast fetches the forecast at a URL obtained from Points.
	Forecast(ctx context.Context, forecastURL string) (Forecast, error)
}

// LocationGateway resolves postal codes to places.
type LocationGateway interface {
	Location(ctx context.Context, postalCode string) (Location, error)
}
