package weather

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/yaeboye/cityspark-events/geo"
	"github.com/yaeboye/cityspark-events/logger"
)

// forecastWindow is how many forecast slots the UI shows (8 x 3h = 24h).
const forecastWindow = 8

// Provider is the slice of the OpenWeatherMap client the normalizer
// depends on.
type Provider interface {
	Current(ctx context.Context, lat, lng float64) (*CurrentObservation, error)
	Forecast(ctx context.Context, lat, lng float64) ([]ForecastPoint, error)
}

// Normalizer resolves a location, queries the provider, and reshapes the
// two responses into the single report the UI consumes.
type Normalizer struct {
	Provider Provider
	Resolver geo.Resolver
}

func NewNormalizer(provider Provider) *Normalizer {
	return &Normalizer{
		Provider: provider,
		Resolver: geo.StaticResolver{},
	}
}

// GetWeather implements the lookup contract: explicit coordinates win,
// otherwise the city name is resolved through the static table (unknown
// names land on the default city), then current conditions plus forecast
// are fetched and normalized.
func (n *Normalizer) GetWeather(ctx context.Context, p Params) (*Result, error) {
	var lat, lng float64
	switch {
	case p.Latitude != nil && p.Longitude != nil:
		lat, lng = *p.Latitude, *p.Longitude
	case p.City != "":
		coords, known := n.Resolver.Resolve(p.City)
		if !known {
			logger.Log.Warn(fmt.Sprintf("[get-weather-uc] Unrecognized city %q, using default-city coordinates.", p.City))
		}
		lat, lng = coords.Lat, coords.Lng
	default:
		return nil, ErrLocationRequired
	}

	logger.Log.Info(fmt.Sprintf("[get-weather-uc] Looking up weather at (%.4f, %.4f), event date: %q", lat, lng, p.Date))

	current, err := n.Provider.Current(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	forecast, err := n.Provider.Forecast(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Current: Conditions{
			Temperature: roundC(current.TempC),
			Description: current.Description,
			Icon:        current.Icon,
			Humidity:    current.Humidity,
			WindSpeed:   current.WindSpeed,
			FeelsLike:   roundC(current.FeelsLikeC),
		},
	}
	report.Location.City = current.City
	report.Location.Country = current.Country
	report.Location.Coordinates.Latitude = current.Latitude
	report.Location.Coordinates.Longitude = current.Longitude

	// First forecast slot on the requested calendar day, if any. No match
	// leaves eventDate null rather than erroring.
	if p.Date != "" {
		if day, err := time.Parse("2006-01-02", p.Date); err == nil {
			for _, point := range forecast {
				if point.At.UTC().Format("2006-01-02") == day.Format("2006-01-02") {
					report.EventDate = &EventDayForecast{
						Date:          p.Date,
						Temperature:   roundC(point.TempC),
						Description:   point.Description,
						Icon:          point.Icon,
						Humidity:      point.Humidity,
						WindSpeed:     point.WindSpeed,
						FeelsLike:     roundC(point.FeelsLikeC),
						Precipitation: point.Precipitation,
					}
					break
				}
			}
		}
	}

	window := forecast
	if len(window) > forecastWindow {
		window = window[:forecastWindow]
	}
	report.Forecast = make([]ForecastEntry, 0, len(window))
	for _, point := range window {
		report.Forecast = append(report.Forecast, ForecastEntry{
			Date:          point.At.UTC().Format(time.RFC3339),
			Temperature:   roundC(point.TempC),
			Description:   point.Description,
			Icon:          point.Icon,
			Precipitation: point.Precipitation,
		})
	}

	return &Result{Success: true, Weather: report}, nil
}

func roundC(v float64) int {
	return int(math.Round(v))
}
