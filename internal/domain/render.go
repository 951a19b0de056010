package domain

import (
	"fmt"
	"strings"
)

// MaxForecastPeriods caps how many forecast periods are rendered.
const MaxForecastPeriods = 5

// BlockSeparator joins rendered alert and forecast blocks.
const BlockSeparator = "\n---\n"

// Placeholders for alert properties missing from the upstream response.
const (
	unknownValue           = "Unknown"
	noDescription          = "No description available"
	noSpecificInstructions = "No specific instructions provided"
)

// FormatAlert renders one alert as labeled lines:
// Event, Area, Severity, Description, Instructions.
func FormatAlert(f AlertFeature) string {
	p := f.Properties
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", orDefault(p.Event, unknownValue))
	fmt.Fprintf(&b, "Area: %s\n", orDefault(p.AreaDesc, unknownValue))
	fmt.Fprintf(&b, "Severity: %s\n", orDefault(p.Severity, unknownValue))
	fmt.Fprintf(&b, "Description: %s\n", orDefault(p.Description, noDescription))
	fmt.Fprintf(&b, "Instructions: %s", orDefault(p.Instruction, noSpecificInstructions))
	return b.String()
}

// FormatAlerts renders every feature and joins them with BlockSeparator.
func FormatAlerts(features []AlertFeature) string {
	blocks := make([]string, 0, len(features))
	for _, f := range features {
		blocks = append(blocks, FormatAlert(f))
	}
	return strings.Join(blocks, BlockSeparator)
}

// FormatPeriod renders one forecast period, e.g.
//
//	Tonight:
//	Temperature: 45°F
//	Wind: 5 mph NW
//	Forecast: Mostly clear, with a low around 45.
func FormatPeriod(p ForecastPeriod) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", p.Name)
	fmt.Fprintf(&b, "Temperature: %s°%s\n", p.Temperature, p.TemperatureUnit)
	fmt.Fprintf(&b, "Wind: %s %s\n", p.WindSpeed, p.WindDirection)
	fmt.Fprintf(&b, "Forecast: %s", p.DetailedForecast)
	return b.String()
}

// FormatForecast renders at most MaxForecastPeriods periods, in upstream
// order, joined with BlockSeparator.
func FormatForecast(periods []ForecastPeriod) string {
	periods = periods[:min(len(periods), MaxForecastPeriods)]
	blocks := make([]string, 0, len(periods))
	for _, p := range periods {
		blocks = append(blocks, FormatPeriod(p))
	}
	return strings.Join(blocks, BlockSeparator)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
