package zippopotam

import (
	"context"
	"fmt"

	"github.com/couchcryptid/weather-mcp/internal/domain"
)

// BaseURL is the Zippopotam.us API root. Only US postal codes are queried.
const BaseURL = "http://api.zippopotam.us"

const acceptJSON = "application/json"

// Client implements domain.LocationGateway using the Zippopotam.us API.
type Client struct {
	fetcher domain.Fetcher
	baseURL string
}

// NewClient creates a Zippopotam.us client that issues requests through fetcher.
func NewClient(fetcher domain.Fetcher) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: BaseURL,
	}
}

// Location looks up the places for a US postal code.
func (c *Client) Location(ctx context.Context, postalCode string) (domain.Location, error) {
	var loc domain.Location
	u := fmt.Sprintf("%s/us/%s", c.baseURL, postalCode)
	if err := c.fetcher.Get(ctx, u, acceptJSON, &loc); err != nil {
		return domain.Location{}, fmt.Errorf("zippopotam location %s: %w", postalCode, err)
	}
	return loc, nil
}
