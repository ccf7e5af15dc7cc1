package serp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-key")
	c.BaseURL = srv.URL
	return c, srv
}

func TestSearchEventsQueryConstruction(t *testing.T) {
	var gotQuery map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"events_results": []}`))
	})
	defer srv.Close()

	_, err := c.SearchEvents(context.Background(), Query{City: "Pune", Date: "2024-02-10", Offset: 10})
	require.NoError(t, err)

	assert.Equal(t, "google_events", gotQuery["engine"])
	assert.Equal(t, "events Pune", gotQuery["q"])
	assert.Equal(t, "en", gotQuery["hl"])
	assert.Equal(t, "in", gotQuery["gl"])
	assert.Equal(t, "2024-02-10", gotQuery["start_date"])
	assert.Equal(t, "2024-02-10", gotQuery["end_date"])
	assert.Equal(t, "20", gotQuery["num"], "fixed page size when no category given")
	assert.Equal(t, "10", gotQuery["start"], "offset passed as pagination cursor")
}

func TestSearchEventsCategoryChangesQuery(t *testing.T) {
	var gotQuery map[string][]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"events_results": []}`))
	})
	defer srv.Close()

	_, err := c.SearchEvents(context.Background(), Query{City: "Pune", Category: "music"})
	require.NoError(t, err)

	assert.Equal(t, "events Pune music", gotQuery["q"][0])
	assert.NotContains(t, gotQuery, "num")
	assert.NotContains(t, gotQuery, "start")
}

func TestSearchEventsDecodesResults(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"events_results": [{
				"event_id": "abc123",
				"title": "Jazz Evening",
				"snippet": "An intimate jazz session.",
				"date": {"start_date": "Feb 10", "end_date": "Feb 11"},
				"venue": {"name": "Blue Note", "address": "FC Road"},
				"address": ["Blue Note, FC Road, Pune"],
				"event_location_map": {"link": "https://maps/..."},
				"ticket_info": [{"price": "₹800"}, {"price": "₹1200"}],
				"link": "https://tickets/jazz",
				"thumbnail": "https://img/jazz.jpg"
			}]
		}`))
	})
	defer srv.Close()

	events, err := c.SearchEvents(context.Background(), Query{City: "Pune"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "abc123", ev.EventID)
	assert.Equal(t, "Jazz Evening", ev.Title)
	assert.Equal(t, "An intimate jazz session.", ev.Description, "snippet used when description missing")
	assert.Equal(t, "Feb 10", ev.StartDate)
	assert.Equal(t, "Blue Note", ev.VenueName)
	assert.Equal(t, []string{"Blue Note, FC Road, Pune"}, ev.Addresses)
	assert.Equal(t, []string{"₹800", "₹1200"}, ev.TicketPrices)
}

func TestSearchEventsProviderErrorPassedVerbatim(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid API key. Your searches will not be recorded."}`))
	})
	defer srv.Close()

	_, err := c.SearchEvents(context.Background(), Query{City: "Pune"})
	require.EqualError(t, err, "Invalid API key. Your searches will not be recorded.")
}

func TestSearchEventsMissingKeyIsConfigurationError(t *testing.T) {
	c := NewClient("")
	_, err := c.SearchEvents(context.Background(), Query{City: "Pune"})
	require.EqualError(t, err, "SerpApi key not configured")
}
