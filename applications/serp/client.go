package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yaeboye/cityspark-events/logger"
)

const defaultBaseURL = "https://serpapi.com/search"

// Query describes one google_events search against SerpAPI.
type Query struct {
	City     string
	Category string
	Date     string // YYYY-MM-DD, optional
	Offset   int
}

// Event is the raw shape of one events_results entry, before any
// normalization. Field presence is entirely up to the provider.
type Event struct {
	EventID      string
	Title        string
	Description  string
	StartDate    string
	EndDate      string
	VenueName    string
	VenueAddress string
	Addresses    []string
	MapLink      string
	TicketPrices []string
	Link         string
	Thumbnail    string
}

// Client calls the SerpAPI google_events engine.
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

// wire types for the provider response
type searchResponse struct {
	Error         string `json:"error"`
	EventsResults []struct {
		EventID     string `json:"event_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Snippet     string `json:"snippet"`
		Date        struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		} `json:"date"`
		Venue struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"venue"`
		Address          []string `json:"address"`
		EventLocationMap struct {
			Link string `json:"link"`
		} `json:"event_location_map"`
		TicketInfo []struct {
			Price string `json:"price"`
		} `json:"ticket_info"`
		Link      string `json:"link"`
		Thumbnail string `json:"thumbnail"`
	} `json:"events_results"`
}

// SearchEvents runs one provider query and returns the raw result list.
// Provider-reported errors are passed through verbatim so the caller can
// surface them directly.
func (c *Client) SearchEvents(ctx context.Context, q Query) ([]Event, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("SerpApi key not configured")
	}

	params := url.Values{}
	params.Set("engine", "google_events")
	searchQ := "events " + q.City
	if q.Category != "" {
		searchQ += " " + q.Category
	}
	params.Set("q", searchQ)
	params.Set("hl", "en")
	params.Set("gl", "in")
	params.Set("api_key", c.APIKey)

	if q.Date != "" {
		// Search a single specific day.
		params.Set("start_date", q.Date)
		params.Set("end_date", q.Date)
	}
	if q.Category == "" {
		params.Set("num", "20")
	}
	if q.Offset > 0 {
		params.Set("start", fmt.Sprintf("%d", q.Offset))
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[serp] Provider responded with status %d, %d results for city %s", resp.StatusCode, len(decoded.EventsResults), q.City))

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return nil, fmt.Errorf("%s", decoded.Error)
		}
		return nil, fmt.Errorf("failed to fetch events")
	}

	events := make([]Event, 0, len(decoded.EventsResults))
	for _, r := range decoded.EventsResults {
		desc := r.Description
		if desc == "" {
			desc = r.Snippet
		}
		prices := make([]string, 0, len(r.TicketInfo))
		for _, t := range r.TicketInfo {
			prices = append(prices, t.Price)
		}
		events = append(events, Event{
			EventID:      r.EventID,
			Title:        r.Title,
			Description:  desc,
			StartDate:    r.Date.StartDate,
			EndDate:      r.Date.EndDate,
			VenueName:    r.Venue.Name,
			VenueAddress: r.Venue.Address,
			Addresses:    r.Address,
			MapLink:      r.EventLocationMap.Link,
			TicketPrices: prices,
			Link:         r.Link,
			Thumbnail:    r.Thumbnail,
		})
	}
	return events, nil
}
