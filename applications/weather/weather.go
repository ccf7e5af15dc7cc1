package weather

import (
	"errors"
	"time"
)

// Params is the public contract of the weather endpoint. Explicit
// coordinates win over a city name; at least one of the two must be given.
type Params struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	City      string   `json:"city,omitempty"`
	Date      string   `json:"date,omitempty"` // YYYY-MM-DD, optional
}

var ErrLocationRequired = errors.New("Latitude and longitude are required")

// Conditions is the normalized current-weather block. Temperatures are
// whole-degree Celsius.
type Conditions struct {
	Temperature int     `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	FeelsLike   int     `json:"feelsLike"`
}

// EventDayForecast is the forecast entry matched to a requested date.
type EventDayForecast struct {
	Date          string  `json:"date"`
	Temperature   int     `json:"temperature"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"windSpeed"`
	FeelsLike     int     `json:"feelsLike"`
	Precipitation float64 `json:"precipitation"`
}

// ForecastEntry is one slot of the short forecast window shown in the UI.
type ForecastEntry struct {
	Date          string  `json:"date"`
	Temperature   int     `json:"temperature"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Precipitation float64 `json:"precipitation"`
}

// Location echoes where the provider actually answered for.
type Location struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
}

// Report is the normalized weather payload returned to the UI.
type Report struct {
	Current   Conditions        `json:"current"`
	EventDate *EventDayForecast `json:"eventDate"`
	Forecast  []ForecastEntry   `json:"forecast"`
	Location  Location          `json:"location"`
}

// Result is the success envelope.
type Result struct {
	Success bool    `json:"success"`
	Weather *Report `json:"weather"`
}

// CurrentObservation is the provider-decoded current-conditions reading.
type CurrentObservation struct {
	TempC       float64
	FeelsLikeC  float64
	Humidity    int
	Description string
	Icon        string
	WindSpeed   float64
	City        string
	Country     string
	Latitude    float64
	Longitude   float64
}

// ForecastPoint is one provider forecast slot (3-hourly for OpenWeatherMap).
type ForecastPoint struct {
	At            time.Time
	TempC         float64
	FeelsLikeC    float64
	Humidity      int
	Description   string
	Icon          string
	WindSpeed     float64
	Precipitation float64
}
