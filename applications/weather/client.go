package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client calls the OpenWeatherMap current-conditions and 5-day forecast
// endpoints in metric units.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type owmWeather struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type owmCurrentResponse struct {
	Message string       `json:"message"`
	Main    owmMain      `json:"main"`
	Weather []owmWeather `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

type owmForecastResponse struct {
	Message json.RawMessage `json:"message"` // number on success, string on error
	List    []struct {
		Dt      int64        `json:"dt"`
		Main    owmMain      `json:"main"`
		Weather []owmWeather `json:"weather"`
		Wind    struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Rain struct {
			ThreeHour float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}

// Current fetches current conditions for a coordinate pair.
func (c *Client) Current(ctx context.Context, lat, lng float64) (*CurrentObservation, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("OpenWeatherMap API key not configured")
	}

	var decoded owmCurrentResponse
	status, err := c.get(ctx, "/weather", lat, lng, &decoded)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		if decoded.Message != "" {
			return nil, fmt.Errorf("%s", decoded.Message)
		}
		return nil, fmt.Errorf("failed to fetch current weather")
	}

	obs := &CurrentObservation{
		TempC:      decoded.Main.Temp,
		FeelsLikeC: decoded.Main.FeelsLike,
		Humidity:   decoded.Main.Humidity,
		WindSpeed:  decoded.Wind.Speed,
		City:       decoded.Name,
		Country:    decoded.Sys.Country,
		Latitude:   decoded.Coord.Lat,
		Longitude:  decoded.Coord.Lon,
	}
	if len(decoded.Weather) > 0 {
		obs.Description = decoded.Weather[0].Description
		obs.Icon = decoded.Weather[0].Icon
	}
	return obs, nil
}

// Forecast fetches the 3-hourly multi-day forecast for a coordinate pair.
func (c *Client) Forecast(ctx context.Context, lat, lng float64) ([]ForecastPoint, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("OpenWeatherMap API key not configured")
	}

	var decoded owmForecastResponse
	status, err := c.get(ctx, "/forecast", lat, lng, &decoded)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		var msg string
		if json.Unmarshal(decoded.Message, &msg) == nil && msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, fmt.Errorf("failed to fetch weather forecast")
	}

	points := make([]ForecastPoint, 0, len(decoded.List))
	for _, item := range decoded.List {
		p := ForecastPoint{
			At:            time.Unix(item.Dt, 0).UTC(),
			TempC:         item.Main.Temp,
			FeelsLikeC:    item.Main.FeelsLike,
			Humidity:      item.Main.Humidity,
			WindSpeed:     item.Wind.Speed,
			Precipitation: item.Rain.ThreeHour,
		}
		if len(item.Weather) > 0 {
			p.Description = item.Weather[0].Description
			p.Icon = item.Weather[0].Icon
		}
		points = append(points, p)
	}
	return points, nil
}

func (c *Client) get(ctx context.Context, path string, lat, lng float64, out interface{}) (int, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lng))
	params.Set("appid", c.APIKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build provider request: %w", err)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return resp.StatusCode, nil
}
