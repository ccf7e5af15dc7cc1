package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yaeboye/cityspark-events/applications/serp"
	"github.com/yaeboye/cityspark-events/geo"
	"github.com/yaeboye/cityspark-events/logger"
)

// SearchParams is the public contract of the search endpoint.
type SearchParams struct {
	City     string `json:"city"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
	Offset   int    `json:"offset,omitempty"`
}

// SearchResult is the success envelope returned to the UI.
type SearchResult struct {
	Success bool     `json:"success"`
	Events  []*Event `json:"events"`
	Message string   `json:"message,omitempty"`
	Total   int      `json:"total"`
}

var ErrCityRequired = errors.New("City parameter is required")

// Provider is the slice of the SerpAPI client the aggregator depends on.
type Provider interface {
	SearchEvents(ctx context.Context, q serp.Query) ([]serp.Event, error)
}

// Aggregator turns one search request into a normalized, deduplicated,
// persisted event list. Every invocation is stateless; the struct only
// carries collaborators so tests can substitute fakes.
type Aggregator struct {
	Provider Provider
	Store    Store
	Resolver geo.Resolver
	Now      func() time.Time
}

func NewAggregator(provider Provider) *Aggregator {
	return &Aggregator{
		Provider: provider,
		Store:    PostgresStore{},
		Resolver: geo.StaticResolver{},
		Now:      time.Now,
	}
}

// Search implements the full aggregation pipeline: validate, query the
// provider, normalize each result, apply the exact-day filter, synthesize
// fallback events on an empty list, then upsert and return durable rows.
func (a *Aggregator) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	logger.Log.Info(fmt.Sprintf("[search-events-uc] Fetching events for city: %s, category: %s, date: %s, offset: %d",
		p.City, p.Category, p.Date, p.Offset))

	if p.City == "" {
		return nil, ErrCityRequired
	}

	var filterDay time.Time
	if p.Date != "" {
		parsed, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", p.Date)
		}
		filterDay = parsed
	}

	raw, err := a.Provider.SearchEvents(ctx, serp.Query{
		City:     p.City,
		Category: p.Category,
		Date:     p.Date,
		Offset:   p.Offset,
	})
	if err != nil {
		return nil, err
	}

	now := a.Now()
	events := make([]*Event, 0, len(raw))
	for _, r := range raw {
		events = append(events, a.normalizeProviderEvent(r, p, now))
	}

	// Exact calendar-day filter. An empty result here is a success with an
	// explanatory message, not an error.
	if p.Date != "" {
		filtered := events[:0]
		for _, ev := range events {
			if ev.StartDate != nil && SameCalendarDay(*ev.StartDate, filterDay) {
				filtered = append(filtered, ev)
			}
		}
		events = filtered

		if len(events) == 0 {
			msg := fmt.Sprintf("No events found in %s for %s. Try searching for a different date or remove the date filter to see all upcoming events.",
				p.City, filterDay.Format("02 January 2006"))
			return &SearchResult{Success: true, Events: []*Event{}, Message: msg, Total: 0}, nil
		}
	}

	// Never hand the UI a hard empty state when no date was asked for.
	if len(events) == 0 {
		logger.Log.Info(fmt.Sprintf("[search-events-uc] No provider results for %s, synthesizing fallback events", p.City))
		events = FallbackEvents(p.City, p.Category, now)
	}

	// Availability beats durability here: a failed upsert is logged and the
	// transient events are returned as-is.
	stored, err := a.Store.UpsertEvents(ctx, events)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[search-events-uc] Error storing events: %v", err))
		stored = events
	}

	logger.Log.Info(fmt.Sprintf("[search-events-uc] Returning %d events for %s", len(stored), p.City))
	return &SearchResult{Success: true, Events: stored, Total: len(stored)}, nil
}

// normalizeProviderEvent reshapes one raw provider result into an Event.
func (a *Aggregator) normalizeProviderEvent(r serp.Event, p SearchParams, now time.Time) *Event {
	// The provider occasionally omits event_id; the synthesized ID needs a
	// per-event random part or ID-less results in one response would share
	// an external_id and collapse on upsert.
	externalID := r.EventID
	if externalID == "" {
		externalID = fmt.Sprintf("serp_%d_%s", now.UnixNano(), uuid.NewString())
	}

	start := RepairDate(r.StartDate, now)
	end := RepairOptionalDate(r.EndDate, now)

	address := r.VenueAddress
	if len(r.Addresses) > 0 {
		address = r.Addresses[0]
	}

	lat, lng := CoordsFromMapLink(r.MapLink, p.City, a.Resolver)
	isPaid, priceMin, priceMax := PriceBounds(r.TicketPrices)

	category := p.Category
	if category == "" {
		category = "general"
	}

	return &Event{
		ExternalID:  externalID,
		Name:        r.Title,
		Description: r.Description,
		Category:    category,
		StartDate:   &start,
		EndDate:     end,
		City:        p.City,
		Venue:       r.VenueName,
		Address:     address,
		Latitude:    lat,
		Longitude:   lng,
		IsPaid:      isPaid,
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		TicketURL:   r.Link,
		ImageURL:    r.Thumbnail,
		Source:      SourceAPI,
		Approved:    false,
		Verified:    false,
	}
}
