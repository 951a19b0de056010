// Command weathercheck calls the weather tools directly against the live
// upstream APIs, without an MCP client, and reports whether each lookup
// produced data. It is meant for operators checking upstream reachability.
//
// Usage:
//
//	go run ./cmd/weathercheck -state CA -zip 2134
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/couchcryptid/weather-mcp/internal/adapter/fetch"
	"github.com/couchcryptid/weather-mcp/internal/adapter/nws"
	"github.com/couchcryptid/weather-mcp/internal/adapter/zippopotam"
	"github.com/couchcryptid/weather-mcp/internal/config"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/couchcryptid/weather-mcp/internal/tools"
)

var unavailable = []string{
	tools.MsgAlertsUnavailable,
	tools.MsgZipUnavailable,
	tools.MsgPointsUnavailable,
	tools.MsgForecastUnavailable,
}

// phase tracks pass/fail for one tool call.
type phase struct {
	name   string
	output string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	state := flag.String("state", "CA", "two-letter state code for get_weather_alerts")
	zip := flag.Int("zip", 20500, "ZIP code for get_weather_forecast")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	quiet := flag.Bool("q", false, "only print the summary")
	flag.Parse()

	os.Exit(run(*state, *zip, *timeout, *quiet))
}

func run(state string, zip int, timeout time.Duration, quiet bool) int {
	logger := observability.NewLogger(&config.Config{LogLevel: "warn", LogFormat: "text"})
	metrics := observability.NewMetricsForTesting()
	f := fetch.NewClient(fetch.DefaultTimeout, metrics, logger)
	svc := tools.NewService(nws.NewClient(f), zippopotam.NewClient(f), metrics, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	phases := []*phase{
		check(tools.AlertsToolName+" "+state, svc.WeatherAlerts(ctx, state)),
		check(fmt.Sprintf("%s %s", tools.ForecastToolName, tools.FormatZipCode(zip)), svc.WeatherForecast(ctx, zip)),
	}

	failed := 0
	for _, p := range phases {
		if !quiet {
			fmt.Printf("=== %s\n%s\n\n", p.name, p.output)
		}
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      %s\n", e)
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func check(name, output string) *phase {
	p := &phase{name: name, output: output}
	if slices.Contains(unavailable, output) {
		p.errorf("upstream lookup failed: %q", output)
	}
	return p
}
