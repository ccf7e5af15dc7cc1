package event

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yaeboye/cityspark-events/geo"
)

// repairYearBefore is the cutoff for the provider's known date-parsing
// defect: google_events sometimes returns dates stamped with a bogus old
// year (2001 is common). Any year below this is rewritten to the current
// year with month and day preserved. Revisit the threshold if the provider
// changes behavior.
const repairYearBefore = 2020

// Layouts the provider has been observed to use for date strings.
var providerDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"Jan 2",
	"Jan 2, 3:04 PM",
}

// RepairDate parses a provider date string and applies the bad-year repair.
// An empty or unparseable input falls back to now. This is kept as its own
// step so the heuristic stays independently testable.
func RepairDate(raw string, now time.Time) time.Time {
	if strings.TrimSpace(raw) == "" {
		return now
	}

	var parsed time.Time
	ok := false
	for _, layout := range providerDateLayouts {
		if p, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			parsed = p
			ok = true
			break
		}
	}
	if !ok {
		return now
	}

	// Layouts without a year (e.g. "Jan 2") parse as year 0, and the
	// provider defect stamps real dates with years like 2001. Both cases
	// get the current year with month/day kept.
	if parsed.Year() < repairYearBefore {
		parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), 0, parsed.Location())
	}
	return parsed
}

// RepairOptionalDate is RepairDate for nullable dates: empty input stays
// nil instead of defaulting to now.
func RepairOptionalDate(raw string, now time.Time) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t := RepairDate(raw, now)
	return &t
}

var priceDigits = regexp.MustCompile(`[^\d.]`)

// ParsePriceMinor extracts a price from a provider ticket-price string
// ("₹1,500", "From $25.00", ...) and converts it to integer minor units.
// No parseable number means nil, never zero.
func ParsePriceMinor(raw string) *int64 {
	cleaned := priceDigits.ReplaceAllString(raw, "")
	if cleaned == "" {
		return nil
	}
	// strconv.ParseFloat rejects strings like "1.2.3" that survive the
	// strip; treat those as unparseable too.
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	minor := int64(math.Round(value * 100))
	return &minor
}

// PriceBounds derives is_paid / price_min / price_max from the raw ticket
// price strings of one provider result.
func PriceBounds(prices []string) (isPaid bool, min, max *int64) {
	for _, raw := range prices {
		p := ParsePriceMinor(raw)
		if p == nil {
			continue
		}
		isPaid = true
		if min == nil || *p < *min {
			min = p
		}
		if max == nil || *p > *max {
			max = p
		}
	}
	return isPaid, min, max
}

// Google Maps embed links carry an opaque hex place token rather than real
// coordinates. Its presence is the only signal we act on; actual
// coordinates come from the city table. Proper geocoding would replace
// this whole function.
var mapLinkToken = regexp.MustCompile(`1s0x[a-f0-9]+:0x[a-f0-9]+`)

// CoordsFromMapLink returns approximate coordinates when the map link
// carries a recognizable place token, nil otherwise.
func CoordsFromMapLink(link, city string, resolver geo.Resolver) (lat, lng *float64) {
	if link == "" || !mapLinkToken.MatchString(link) {
		return nil, nil
	}
	coords := geo.ResolveOrDefault(resolver, city)
	return &coords.Lat, &coords.Lng
}

// SameCalendarDay reports whether t falls on the given calendar day.
func SameCalendarDay(t time.Time, day time.Time) bool {
	return t.Year() == day.Year() && t.Month() == day.Month() && t.Day() == day.Day()
}

// NextSaturday returns the upcoming Saturday strictly after now's weekday
// position (today counts as "this" Saturday only if today is not Saturday).
func NextSaturday(now time.Time) time.Time {
	days := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}
