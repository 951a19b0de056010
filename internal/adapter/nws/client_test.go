package nws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/weather-mcp/internal/adapter/fetch"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	f := fetch.NewClient(5*time.Second, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &Client{fetcher: f, baseURL: baseURL}
}

func geoJSONServer(t *testing.T, wantPath, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, acceptGeoJSON, r.Header.Get("Accept"))
		assert.Equal(t, fetch.UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", acceptGeoJSON)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Alerts_Success(t *testing.T) {
	srv := geoJSONServer(t, "/alerts/active/area/CA", `{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"event": "Wind Advisory", "areaDesc": "Kern", "severity": "Moderate",
				"description": "Gusts to 50 mph.", "instruction": "Secure objects."}}
		]
	}`)

	resp, err := testClient(srv.URL).Alerts(context.Background(), "CA")
	require.NoError(t, err)

	require.Len(t, resp.Features, 1)
	p := resp.Features[0].Properties
	assert.Equal(t, "Wind Advisory", p.Event)
	assert.Equal(t, "Kern", p.AreaDesc)
	assert.Equal(t, "Moderate", p.Severity)
	assert.Equal(t, "Gusts to 50 mph.", p.Description)
	assert.Equal(t, "Secure objects.", p.Instruction)
}

func TestClient_Alerts_StateCodePassedThrough(t *testing.T) {
	srv := geoJSONServer(t, "/alerts/active/area/not-a-state", `{"features": []}`)

	resp, err := testClient(srv.URL).Alerts(context.Background(), "not-a-state")
	require.NoError(t, err)
	assert.Empty(t, resp.Features)
}

func TestClient_Alerts_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Alerts(context.Background(), "ZZ")
	require.ErrorIs(t, err, fetch.ErrUnavailable)
	assert.Contains(t, err.Error(), "nws alerts ZZ")
}

func TestClient_Points_Success(t *testing.T) {
	srv := geoJSONServer(t, "/points/39.7456,-97.0892", `{
		"properties": {
			"gridId": "TOP", "gridX": 32, "gridY": 81,
			"forecast": "https://api.weather.gov/gridpoints/TOP/32,81/forecast"
		}
	}`)

	resp, err := testClient(srv.URL).Points(context.Background(), "39.7456", "-97.0892")
	require.NoError(t, err)

	assert.Equal(t, "TOP", resp.Properties.GridID)
	assert.Equal(t, 32, resp.Properties.GridX)
	assert.Equal(t, 81, resp.Properties.GridY)
	assert.Equal(t, "https://api.weather.gov/gridpoints/TOP/32,81/forecast", resp.Properties.Forecast)
}

func TestClient_Points_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Points(context.Background(), "0", "0")
	require.ErrorIs(t, err, fetch.ErrUnavailable)
}

func TestClient_Forecast_UsesURLVerbatim(t *testing.T) {
	srv := geoJSONServer(t, "/gridpoints/TOP/32,81/forecast", `{
		"properties": {"periods": [
			{"number": 1, "name": "Tonight", "temperature": 45, "temperatureUnit": "F",
				"windSpeed": "5 mph", "windDirection": "NW", "detailedForecast": "Clear."}
		]}
	}`)

	c := testClient("http://unused.invalid")
	resp, err := c.Forecast(context.Background(), srv.URL+"/gridpoints/TOP/32,81/forecast")
	require.NoError(t, err)

	require.Len(t, resp.Properties.Periods, 1)
	p := resp.Properties.Periods[0]
	assert.Equal(t, "Tonight", p.Name)
	assert.Equal(t, "45", p.Temperature.String())
	assert.Equal(t, "F", p.TemperatureUnit)
	assert.Equal(t, "5 mph", p.WindSpeed)
	assert.Equal(t, "NW", p.WindDirection)
	assert.Equal(t, "Clear.", p.DetailedForecast)
}

func TestClient_Forecast_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"properties":`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Forecast(context.Background(), srv.URL+"/forecast")
	require.ErrorIs(t, err, fetch.ErrUnavailable)
}

func TestNewClient_UsesNWSBaseURL(t *testing.T) {
	c := NewClient(nil)
	assert.Equal(t, "https://api.weather.gov", c.baseURL)
}
