package domain

import "encoding/json"

// AlertsResponse is the NWS /alerts/active FeatureCollection.
// Features is nil when the member is absent from the response and a
// non-nil empty slice when the upstream reports no alerts.
type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature is a single alert in the collection.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties holds the alert fields rendered for the user. Any of them
// may be empty; rendering substitutes a placeholder.
type AlertProperties struct {
	Event       string `json:"event"`
	AreaDesc    string `json:"areaDesc"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// Location is the Zippopotam.us response for a postal code.
type Location struct {
	PostCode string  `json:"post code"`
	Country  string  `json:"country"`
	Places   []Place `json:"places"`
}

// Place is one named place within a postal code.
type Place struct {
	PlaceName         string `json:"place name"`
	State             string `json:"state"`
	StateAbbreviation string `json:"state abbreviation"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
}

// PointMetadata is the NWS /points/{lat},{lon} response.
type PointMetadata struct {
	Properties struct {
		GridID         string `json:"gridId"`
		GridX          int    `json:"gridX"`
		GridY          int    `json:"gridY"`
		Forecast       string `json:"forecast"`
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

// Forecast is the NWS gridpoint forecast response.
type Forecast struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// ForecastPeriod is one forecast time slot, e.g. "Tonight".
type ForecastPeriod struct {
	Number           int         `json:"number"`
	Name             string      `json:"name"`
	Temperature      json.Number `json:"temperature"` // rendered verbatim
	TemperatureUnit  string      `json:"temperatureUnit"`
	WindSpeed        string      `json:"windSpeed"`
	WindDirection    string      `json:"windDirection"`
	ShortForecast    string      `json:"shortForecast"`
	DetailedForecast string      `json:"detailedForecast"`
}
