package nws

import (
	"context"
	"fmt"

	"github.com/couchcryptid/weather-mcp/internal/domain"
)

// BaseURL is the National Weather Service API root.
const BaseURL = "https://api.weather.gov"

const acceptGeoJSON = "application/geo+json"

// Client implements domain.WeatherGateway against the NWS API.
// Inputs are not validated; NWS decides what is acceptable.
type Client struct {
	fetcher domain.Fetcher
	baseURL string
}

// NewClient creates an NWS client that issues requests through fetcher.
func NewClient(fetcher domain.Fetcher) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: BaseURL,
	}
}

// Alerts returns active alerts for a state or marine area code.
func (c *Client) Alerts(ctx context.Context, state string) (domain.AlertsResponse, error) {
	var resp domain.AlertsResponse
	u := fmt.Sprintf("%s/alerts/active/area/%s", c.baseURL, state)
	if err := c.fetcher.Get(ctx, u, acceptGeoJSON, &resp); err != nil {
		return domain.AlertsResponse{}, fmt.Errorf("nws alerts %s: %w", state, err)
	}
	return resp, nil
}

// Points returns grid metadata for a coordinate pair.
func (c *Client) Points(ctx context.Context, lat, lon string) (domain.PointMetadata, error) {
	var resp domain.PointMetadata
	u := fmt.Sprintf("%s/points/%s,%s", c.baseURL, lat, lon)
	if err := c.fetcher.Get(ctx, u, acceptGeoJSON, &resp); err != nil {
		return domain.PointMetadata{}, fmt.Errorf("nws points %s,%s: %w", lat, lon, err)
	}
	return resp, nil
}

// Forecast fetches a gridpoint forecast. The URL is used as given.
func (c *Client) Forecast(ctx context.Context, forecastURL string) (domain.Forecast, error) {
	var resp domain.Forecast
	if err := c.fetcher.Get(ctx, forecastURL, acceptGeoJSON, &resp); err != nil {
		return domain.Forecast{}, fmt.Errorf("nws forecast: %w", err)
	}
	return resp, nil
}
