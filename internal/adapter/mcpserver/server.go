package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/couchcryptid/weather-mcp/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server identity reported during MCP initialization.
const (
	ServerName    = "weather-mcp"
	ServerVersion = "1.0.0"
)

// WeatherTools is the tool logic exposed over MCP.
type WeatherTools interface {
	WeatherAlerts(ctx context.Context, state string) string
	WeatherForecast(ctx context.Context, zipCode int) string
}

// AlertsInput is the argument schema of get_weather_alerts.
type AlertsInput struct {
	State string `json:"state" jsonschema:"Two-letter US state code (e.g. CA, NY)"`
}

// ForecastInput is the argument schema of get_weather_forecast.
type ForecastInput struct {
	ZipCode int `json:"zipCode" jsonschema:"The zip code of the location"`
}

// Server registers the weather tools on an MCP server and serves them.
type Server struct {
	server  *mcp.Server
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// NewServer creates an MCP server with get_weather_alerts and get_weather_forecast.
func NewServer(t WeatherTools, logger *slog.Logger, metrics *observability.Metrics) *Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        tools.AlertsToolName,
		Description: "Get weather alerts for a US state.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in AlertsInput) (*mcp.CallToolResult, any, error) {
		logger.Debug("tool called", "tool", tools.AlertsToolName, "state", in.State)
		return textResult(t.WeatherAlerts(ctx, in.State)), nil, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        tools.ForecastToolName,
		Description: "Get weather forecast for a location.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in ForecastInput) (*mcp.CallToolResult, any, error) {
		logger.Debug("tool called", "tool", tools.ForecastToolName, "zip", in.ZipCode)
		return textResult(t.WeatherForecast(ctx, in.ZipCode)), nil, nil
	})

	return &Server{server: srv, logger: logger, metrics: metrics}
}

// Run serves a single session over stdin/stdout until the client disconnects
// or ctx is cancelled. A cancelled context is not reported as an error.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "transport", "stdio")
	s.ready.Store(true)
	s.metrics.ServerRunning.Set(1)
	defer func() {
		s.ready.Store(false)
		s.metrics.ServerRunning.Set(0)
	}()

	err := s.server.Run(ctx, &mcp.StdioTransport{})
	if err != nil && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// HTTPHandler returns a streamable HTTP handler serving every request with
// this server. The server reports ready once the handler exists.
func (s *Server) HTTPHandler() http.Handler {
	h := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.server }, nil)
	s.ready.Store(true)
	s.metrics.ServerRunning.Set(1)
	return h
}

// Connect attaches the server to an arbitrary transport, e.g. in-memory in tests.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// CheckReadiness returns nil once the server is serving a transport.
func (s *Server) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("mcp server is not serving")
	}
	return nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
