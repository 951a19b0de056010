package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/jonboulle/clockwork"
)

// UserAgent identifies this service to upstream APIs. NWS requires one.
const UserAgent = "weather-mcp/1.0"

// DefaultTimeout bounds each upstream request.
const DefaultTimeout = 30 * time.Second

// ErrUnavailable is wrapped by every error returned from Get.
var ErrUnavailable = errors.New("upstream data unavailable")

// Request outcomes recorded in metrics.
const (
	outcomeSuccess        = "success"
	outcomeTransportError = "transport_error"
	outcomeStatusError    = "status_error"
	outcomeDecodeError    = "decode_error"
)

// Client implements domain.Fetcher over net/http.
type Client struct {
	httpClient *http.Client
	userAgent  string
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a fetch client with the given per-request timeout.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: UserAgent,
		clock:     clockwork.NewRealClock(),
		metrics:   metrics,
		logger:    logger,
	}
}

// Get issues a GET to url with the given Accept header and decodes the JSON
// body into out. Any failure is logged and returned wrapped in ErrUnavailable.
func (c *Client) Get(ctx context.Context, url, accept string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.fail(url, "", outcomeTransportError, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	host := req.URL.Host
	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(host).Observe(c.clock.Since(start).Seconds())
	if err != nil {
		return c.fail(url, host, outcomeTransportError, fmt.Errorf("GET %s: %w", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return c.fail(url, host, outcomeStatusError, fmt.Errorf("GET %s: status %d: %s", url, resp.StatusCode, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(url, host, outcomeDecodeError, fmt.Errorf("decode %s: %w", url, err))
	}

	c.metrics.UpstreamRequests.WithLabelValues(host, outcomeSuccess).Inc()
	return nil
}

func (c *Client) fail(url, host, outcome string, err error) error {
	c.metrics.UpstreamRequests.WithLabelValues(host, outcome).Inc()
	c.logger.Warn("upstream request failed",
		"url", url,
		"outcome", outcome,
		"error", err,
	)
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
