package event

import (
	"fmt"
	"time"
)

// FallbackEvents synthesizes the two placeholder events shown when the
// provider comes back empty and no date filter was requested: a Saturday
// market and a Sunday cultural listing for the searched city.
func FallbackEvents(city, category string, now time.Time) []*Event {
	saturday := NextSaturday(now)
	sunday := saturday.AddDate(0, 0, 1)

	marketCategory := category
	if marketCategory == "" {
		marketCategory = "market"
	}
	culturalCategory := category
	if culturalCategory == "" {
		culturalCategory = "cultural"
	}

	priceMin := int64(200)
	priceMax := int64(500)

	return []*Event{
		{
			ExternalID:  fmt.Sprintf("fallback_%s_1", city),
			Name:        fmt.Sprintf("Weekend Markets in %s", city),
			Description: fmt.Sprintf("Explore local weekend markets, street food, and artisan crafts in %s. Perfect for a leisurely Saturday morning.", city),
			Category:    marketCategory,
			StartDate:   &saturday,
			City:        city,
			Venue:       "Various Markets",
			Address:     fmt.Sprintf("%s City Center", city),
			IsPaid:      false,
			Source:      SourceFallback,
			Approved:    false,
			Verified:    false,
		},
		{
			ExternalID:  fmt.Sprintf("fallback_%s_2", city),
			Name:        fmt.Sprintf("Cultural Events in %s", city),
			Description: fmt.Sprintf("Discover traditional music, dance performances, and local cultural celebrations happening this weekend in %s.", city),
			Category:    culturalCategory,
			StartDate:   &sunday,
			City:        city,
			Venue:       "Cultural Centers",
			Address:     fmt.Sprintf("%s Cultural District", city),
			IsPaid:      true,
			PriceMin:    &priceMin,
			PriceMax:    &priceMax,
			Source:      SourceFallback,
			Approved:    false,
			Verified:    false,
		},
	}
}
