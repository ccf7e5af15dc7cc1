package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeatherClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-key")
	c.BaseURL = srv.URL
	return c, srv
}

func TestCurrentDecodesMetricUnits(t *testing.T) {
	c, srv := newTestWeatherClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(`{
			"main": {"temp": 31.6, "feels_like": 34.2, "humidity": 68},
			"weather": [{"description": "haze", "icon": "50d"}],
			"wind": {"speed": 3.1},
			"name": "Delhi",
			"sys": {"country": "IN"},
			"coord": {"lat": 28.61, "lon": 77.21}
		}`))
	})
	defer srv.Close()

	obs, err := c.Current(context.Background(), 28.6139, 77.2090)
	require.NoError(t, err)
	assert.Equal(t, 31.6, obs.TempC)
	assert.Equal(t, 34.2, obs.FeelsLikeC)
	assert.Equal(t, 68, obs.Humidity)
	assert.Equal(t, "haze", obs.Description)
	assert.Equal(t, "Delhi", obs.City)
	assert.Equal(t, "IN", obs.Country)
}

func TestCurrentProviderErrorPassedVerbatim(t *testing.T) {
	c, srv := newTestWeatherClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key."}`))
	})
	defer srv.Close()

	_, err := c.Current(context.Background(), 28.6139, 77.2090)
	require.EqualError(t, err, "Invalid API key.")
}

func TestForecastDecodesPointsAndPrecipitation(t *testing.T) {
	c, srv := newTestWeatherClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Write([]byte(`{
			"message": 0,
			"list": [
				{"dt": 1707562800, "main": {"temp": 25.4, "feels_like": 26.0, "humidity": 40},
				 "weather": [{"description": "clear sky", "icon": "01d"}],
				 "wind": {"speed": 2.2}, "rain": {"3h": 0.3}},
				{"dt": 1707573600, "main": {"temp": 27.1},
				 "weather": [{"description": "few clouds", "icon": "02d"}],
				 "wind": {"speed": 2.0}}
			]
		}`))
	})
	defer srv.Close()

	points, err := c.Forecast(context.Background(), 28.6139, 77.2090)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, time.Unix(1707562800, 0).UTC(), points[0].At)
	assert.Equal(t, 25.4, points[0].TempC)
	assert.Equal(t, 0.3, points[0].Precipitation)
	// Absent rain block defaults to zero precipitation, not an error.
	assert.Equal(t, 0.0, points[1].Precipitation)
}

func TestForecastProviderErrorPassedVerbatim(t *testing.T) {
	c, srv := newTestWeatherClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"cod": "400", "message": "wrong latitude"}`))
	})
	defer srv.Close()

	_, err := c.Forecast(context.Background(), 999, 77.2090)
	require.EqualError(t, err, "wrong latitude")
}

func TestMissingKeyIsConfigurationError(t *testing.T) {
	c := NewClient("")
	_, err := c.Current(context.Background(), 28.6139, 77.2090)
	require.EqualError(t, err, "OpenWeatherMap API key not configured")
	_, err = c.Forecast(context.Background(), 28.6139, 77.2090)
	require.EqualError(t, err, "OpenWeatherMap API key not configured")
}
