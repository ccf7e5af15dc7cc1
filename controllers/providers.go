package controllers

import (
	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/applications/weather"
)

// Collaborators the provider-backed endpoints use. Set once from main
// before the server starts.
var (
	EventAggregator   *event.Aggregator
	WeatherNormalizer *weather.Normalizer
)

// Init wires the search aggregator and weather normalizer into the
// controller layer.
func Init(agg *event.Aggregator, norm *weather.Normalizer) {
	EventAggregator = agg
	WeatherNormalizer = norm
}
