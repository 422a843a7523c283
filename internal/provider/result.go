// Package provider defines the result types returned by external data
// providers. Adapters under internal/adapter/provider map third-party API
// payloads into these types so services never see raw API responses.
package provider

// WeatherObservation is a historical weather reading for a point in time
// at a location. Units are imperial.
type WeatherObservation struct {
	Timestamp   int64
	Temperature float64
	Pressure    float64
	Humidity    int
	Clouds      int
	WindSpeed   float64
	WindDeg     int
	Conditions  string
	Description string
}

// GeoPoint is a geocoded place.
type GeoPoint struct {
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
	State     string
}
