// Package domain models the upstream weather and postal lookup data consumed
// by the weather tools, and renders it as plain text for a language model.
//
// # Data Sources
//
// Weather data comes from the National Weather Service (NWS) public API at
// https://api.weather.gov. Responses are GeoJSON and are requested with
// "Accept: application/geo+json". NWS rejects requests without a User-Agent.
//
// Postal code lookups come from Zippopotam.us at http://api.zippopotam.us.
// Only the "us" country path is used.
//
// # Forecast Chain
//
//	ZIP "02134"
//	  → zippopotam /us/02134         → places[0].latitude/longitude ("42.3537", "-71.1327")
//	  → nws /points/42.3537,-71.1327 → properties.forecast (gridpoint forecast URL)
//	  → nws <forecast URL>           → properties.periods (first MaxForecastPeriods rendered)
//
// Zippopotam returns coordinates as decimal strings; they are passed to NWS
// verbatim. NWS redirects overly precise coordinates, which the HTTP client
// follows transparently.
//
// # Alerts
//
// /alerts/active/area/{state} returns a FeatureCollection. A response with no
// "features" member is treated as a failed lookup, while an empty "features"
// array means there are no active alerts. Missing alert properties render as
// fixed placeholders (see [AlertProperties]).
package domain
