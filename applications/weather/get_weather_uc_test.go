package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yaeboye/cityspark-events/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeatherProvider struct {
	current     *CurrentObservation
	forecast    []ForecastPoint
	currentErr  error
	forecastErr error
	gotLat      float64
	gotLng      float64
}

func (f *fakeWeatherProvider) Current(_ context.Context, lat, lng float64) (*CurrentObservation, error) {
	f.gotLat, f.gotLng = lat, lng
	return f.current, f.currentErr
}

func (f *fakeWeatherProvider) Forecast(_ context.Context, lat, lng float64) ([]ForecastPoint, error) {
	return f.forecast, f.forecastErr
}

func defaultObservation() *CurrentObservation {
	return &CurrentObservation{
		TempC:       31.6,
		FeelsLikeC:  34.2,
		Humidity:    68,
		Description: "haze",
		Icon:        "50d",
		WindSpeed:   3.1,
		City:        "Delhi",
		Country:     "IN",
		Latitude:    28.6139,
		Longitude:   77.2090,
	}
}

func newTestNormalizer(p Provider) *Normalizer {
	return &Normalizer{Provider: p, Resolver: geo.StaticResolver{}}
}

func TestGetWeatherRequiresLocation(t *testing.T) {
	n := newTestNormalizer(&fakeWeatherProvider{})

	_, err := n.GetWeather(context.Background(), Params{})
	require.ErrorIs(t, err, ErrLocationRequired)
}

func TestGetWeatherExplicitCoordinatesWin(t *testing.T) {
	provider := &fakeWeatherProvider{current: defaultObservation()}
	n := newTestNormalizer(provider)

	lat, lng := 19.0760, 72.8777
	_, err := n.GetWeather(context.Background(), Params{Latitude: &lat, Longitude: &lng, City: "Delhi"})
	require.NoError(t, err)
	assert.Equal(t, 19.0760, provider.gotLat)
	assert.Equal(t, 72.8777, provider.gotLng)
}

func TestGetWeatherUnknownCityUsesDelhiCoordinates(t *testing.T) {
	provider := &fakeWeatherProvider{current: defaultObservation()}
	n := newTestNormalizer(provider)

	_, err := n.GetWeather(context.Background(), Params{City: "unknownplace"})
	require.NoError(t, err)
	assert.Equal(t, 28.6139, provider.gotLat)
	assert.Equal(t, 77.2090, provider.gotLng)

	// Same coordinates as an explicit Delhi lookup.
	provider2 := &fakeWeatherProvider{current: defaultObservation()}
	n2 := newTestNormalizer(provider2)
	_, err = n2.GetWeather(context.Background(), Params{City: "Delhi"})
	require.NoError(t, err)
	assert.Equal(t, provider.gotLat, provider2.gotLat)
	assert.Equal(t, provider.gotLng, provider2.gotLng)
}

func TestGetWeatherNormalizesCurrentConditions(t *testing.T) {
	provider := &fakeWeatherProvider{current: defaultObservation()}
	n := newTestNormalizer(provider)

	result, err := n.GetWeather(context.Background(), Params{City: "Delhi"})
	require.NoError(t, err)
	require.True(t, result.Success)

	cur := result.Weather.Current
	assert.Equal(t, 32, cur.Temperature, "whole-degree rounding")
	assert.Equal(t, 34, cur.FeelsLike)
	assert.Equal(t, 68, cur.Humidity)
	assert.Equal(t, "haze", cur.Description)
	assert.Equal(t, "Delhi", result.Weather.Location.City)
	assert.Equal(t, "IN", result.Weather.Location.Country)
}

func TestGetWeatherMatchesEventDateForecast(t *testing.T) {
	day := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	provider := &fakeWeatherProvider{
		current: defaultObservation(),
		forecast: []ForecastPoint{
			{At: day.Add(-24 * time.Hour), TempC: 20},
			{At: day.Add(9 * time.Hour), TempC: 25.4, Description: "clear sky", Precipitation: 0.3},
			{At: day.Add(12 * time.Hour), TempC: 27},
		},
	}
	n := newTestNormalizer(provider)

	result, err := n.GetWeather(context.Background(), Params{City: "Delhi", Date: "2024-02-10"})
	require.NoError(t, err)

	ed := result.Weather.EventDate
	require.NotNil(t, ed, "first slot on the requested day must match")
	assert.Equal(t, "2024-02-10", ed.Date)
	assert.Equal(t, 25, ed.Temperature)
	assert.Equal(t, "clear sky", ed.Description)
	assert.Equal(t, 0.3, ed.Precipitation)
}

func TestGetWeatherNoForecastMatchLeavesEventDateNull(t *testing.T) {
	provider := &fakeWeatherProvider{
		current: defaultObservation(),
		forecast: []ForecastPoint{
			{At: time.Date(2024, time.February, 6, 12, 0, 0, 0, time.UTC)},
		},
	}
	n := newTestNormalizer(provider)

	result, err := n.GetWeather(context.Background(), Params{City: "Delhi", Date: "2024-03-01"})
	require.NoError(t, err, "a date beyond the forecast window is not an error")
	assert.Nil(t, result.Weather.EventDate)
}

func TestGetWeatherTruncatesForecastWindow(t *testing.T) {
	base := time.Date(2024, time.February, 6, 0, 0, 0, 0, time.UTC)
	var points []ForecastPoint
	for i := 0; i < 40; i++ {
		points = append(points, ForecastPoint{At: base.Add(time.Duration(i) * 3 * time.Hour)})
	}
	provider := &fakeWeatherProvider{current: defaultObservation(), forecast: points}
	n := newTestNormalizer(provider)

	result, err := n.GetWeather(context.Background(), Params{City: "Delhi"})
	require.NoError(t, err)
	assert.Len(t, result.Weather.Forecast, 8)
}

func TestGetWeatherPropagatesProviderErrors(t *testing.T) {
	n := newTestNormalizer(&fakeWeatherProvider{currentErr: errors.New("city not found")})
	_, err := n.GetWeather(context.Background(), Params{City: "Delhi"})
	require.EqualError(t, err, "city not found")

	n = newTestNormalizer(&fakeWeatherProvider{
		current:     defaultObservation(),
		forecastErr: errors.New("Invalid API key"),
	})
	_, err = n.GetWeather(context.Background(), Params{City: "Delhi"})
	require.EqualError(t, err, "Invalid API key")
}
