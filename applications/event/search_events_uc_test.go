package event

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yaeboye/cityspark-events/applications/serp"
	"github.com/yaeboye/cityspark-events/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	events []serp.Event
	err    error
	gotQ   serp.Query
}

func (f *fakeProvider) SearchEvents(_ context.Context, q serp.Query) ([]serp.Event, error) {
	f.gotQ = q
	return f.events, f.err
}

type fakeStore struct {
	err      error
	received []*Event
}

func (f *fakeStore) UpsertEvents(_ context.Context, events []*Event) ([]*Event, error) {
	f.received = events
	if f.err != nil {
		return nil, f.err
	}
	// Simulate the database assigning durable ids.
	stored := make([]*Event, len(events))
	for i, ev := range events {
		cp := *ev
		cp.CreatedAt = time.Now()
		cp.UpdatedAt = cp.CreatedAt
		stored[i] = &cp
	}
	return stored, nil
}

func newTestAggregator(p Provider, s Store, now time.Time) *Aggregator {
	return &Aggregator{
		Provider: p,
		Store:    s,
		Resolver: geo.StaticResolver{},
		Now:      func() time.Time { return now },
	}
}

var testNow = time.Date(2024, time.February, 5, 10, 0, 0, 0, time.UTC) // a Monday

func TestSearchRequiresCity(t *testing.T) {
	agg := newTestAggregator(&fakeProvider{}, &fakeStore{}, testNow)

	_, err := agg.Search(context.Background(), SearchParams{})
	require.ErrorIs(t, err, ErrCityRequired)
}

func TestSearchPropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("Your account has run out of searches.")}
	agg := newTestAggregator(provider, &fakeStore{}, testNow)

	_, err := agg.Search(context.Background(), SearchParams{City: "Pune"})
	require.Error(t, err)
	assert.Equal(t, "Your account has run out of searches.", err.Error())
}

func TestSearchNormalizesProviderResults(t *testing.T) {
	provider := &fakeProvider{events: []serp.Event{
		{
			EventID:      "ev_1",
			Title:        "Sunburn Arena",
			Description:  "An open-air electronic music night.",
			StartDate:    "2001-02-10", // provider year defect
			VenueName:    "Laxmi Lawns",
			Addresses:    []string{"Laxmi Lawns, Pune"},
			MapLink:      "https://maps.google.com/?data=!4m2!3m1!1s0x3bc2bf2e67461101:0x828d43bf9d9ee343",
			TicketPrices: []string{"₹1,500", "₹4,000"},
			Link:         "https://tickets.example.com/sunburn",
		},
	}}
	store := &fakeStore{}
	agg := newTestAggregator(provider, store, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Pune", Category: "music"})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Events, 1)

	ev := result.Events[0]
	assert.Equal(t, "ev_1", ev.ExternalID)
	assert.Equal(t, SourceAPI, ev.Source)
	assert.False(t, ev.Approved)
	assert.False(t, ev.Verified)

	// Bad year repaired to the current year, month/day preserved.
	require.NotNil(t, ev.StartDate)
	assert.Equal(t, 2024, ev.StartDate.Year())
	assert.Equal(t, time.February, ev.StartDate.Month())
	assert.Equal(t, 10, ev.StartDate.Day())

	// Prices in minor units, derived from the ticket strings.
	assert.True(t, ev.IsPaid)
	require.NotNil(t, ev.PriceMin)
	require.NotNil(t, ev.PriceMax)
	assert.Equal(t, int64(150000), *ev.PriceMin)
	assert.Equal(t, int64(400000), *ev.PriceMax)

	// Map-link token present, so city-table coordinates were attached.
	require.NotNil(t, ev.Latitude)
	assert.Equal(t, 18.5204, *ev.Latitude)

	assert.Equal(t, "Pune", provider.gotQ.City)
	assert.Equal(t, "music", provider.gotQ.Category)
}

func TestSearchSynthesizedExternalIDsAreUnique(t *testing.T) {
	// The provider sometimes drops event_id; each such result still needs
	// its own external_id or the upsert collapses them into one row.
	provider := &fakeProvider{events: []serp.Event{
		{Title: "Morning Raga", StartDate: "2024-02-20"},
		{Title: "Evening Qawwali", StartDate: "2024-02-21"},
	}}
	store := &fakeStore{}
	agg := newTestAggregator(provider, store, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Pune"})
	require.NoError(t, err)
	require.Len(t, result.Events, 2)

	first, second := result.Events[0], result.Events[1]
	assert.True(t, strings.HasPrefix(first.ExternalID, "serp_"))
	assert.True(t, strings.HasPrefix(second.ExternalID, "serp_"))
	assert.NotEqual(t, first.ExternalID, second.ExternalID)
}

func TestSearchDateFilterKeepsExactDayOnly(t *testing.T) {
	var events []serp.Event
	for _, d := range []string{"2024-02-08", "2024-02-09", "2024-02-10", "2024-02-11", "2024-02-12"} {
		events = append(events, serp.Event{EventID: "ev_" + d, Title: "Event " + d, StartDate: d})
	}
	agg := newTestAggregator(&fakeProvider{events: events}, &fakeStore{}, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Pune", Date: "2024-02-10"})
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "ev_2024-02-10", result.Events[0].ExternalID)
	assert.Equal(t, 1, result.Total)
}

func TestSearchDateFilterEmptyIsSuccessWithMessage(t *testing.T) {
	provider := &fakeProvider{events: []serp.Event{
		{EventID: "ev_other", Title: "Event", StartDate: "2024-03-01"},
	}}
	agg := newTestAggregator(provider, &fakeStore{}, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Pune", Date: "2024-02-10"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Events)
	assert.NotEmpty(t, result.Message)
	assert.Contains(t, result.Message, "Pune")
	assert.Equal(t, 0, result.Total)
}

func TestSearchSynthesizesFallbackEvents(t *testing.T) {
	store := &fakeStore{}
	agg := newTestAggregator(&fakeProvider{}, store, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Mumbai"})
	require.NoError(t, err)
	require.Len(t, result.Events, 2)

	first, second := result.Events[0], result.Events[1]
	assert.Equal(t, "fallback_Mumbai_1", first.ExternalID)
	assert.Equal(t, "fallback_Mumbai_2", second.ExternalID)
	assert.Equal(t, SourceFallback, first.Source)
	assert.Equal(t, SourceFallback, second.Source)

	// Next Saturday after Monday 2024-02-05 is the 10th, Sunday the 11th.
	require.NotNil(t, first.StartDate)
	require.NotNil(t, second.StartDate)
	assert.Equal(t, time.Saturday, first.StartDate.Weekday())
	assert.Equal(t, time.Sunday, second.StartDate.Weekday())
	assert.Equal(t, "2024-02-10", first.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-02-11", second.StartDate.Format("2006-01-02"))

	// Fallback rows are never verified and still get persisted.
	for _, ev := range store.received {
		assert.False(t, ev.Verified)
	}
}

func TestSearchNoFallbackWhenDateGiven(t *testing.T) {
	agg := newTestAggregator(&fakeProvider{}, &fakeStore{}, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Mumbai", Date: "2024-02-10"})
	require.NoError(t, err)
	assert.Empty(t, result.Events)
	assert.NotEmpty(t, result.Message)
}

func TestSearchSurvivesStoreFailure(t *testing.T) {
	provider := &fakeProvider{events: []serp.Event{
		{EventID: "ev_1", Title: "Event One", StartDate: "2024-02-20"},
	}}
	store := &fakeStore{err: errors.New("connection refused")}
	agg := newTestAggregator(provider, store, testNow)

	result, err := agg.Search(context.Background(), SearchParams{City: "Pune"})
	require.NoError(t, err, "persistence failure must not surface to the caller")
	require.Len(t, result.Events, 1)
	assert.Equal(t, "ev_1", result.Events[0].ExternalID)
}

func TestSearchRejectsMalformedDate(t *testing.T) {
	agg := newTestAggregator(&fakeProvider{}, &fakeStore{}, testNow)

	_, err := agg.Search(context.Background(), SearchParams{City: "Pune", Date: "10-02-2024"})
	require.Error(t, err)
}
