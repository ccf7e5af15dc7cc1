package event

import (
	"testing"
	"time"

	"github.com/yaeboye/cityspark-events/geo"
)

func TestRepairDateRewritesBadYears(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		raw       string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{"provider defect year 2001", "2001-03-08", 2024, time.March, 8},
		{"year zero from month-day layout", "Jun 7", 2024, time.June, 7},
		{"valid recent year untouched", "2025-11-20", 2025, time.November, 20},
		{"rfc3339 passthrough", "2024-02-10T19:30:00Z", 2024, time.February, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairDate(tt.raw, now)
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Fatalf("RepairDate(%q) = %v, want %d-%s-%d", tt.raw, got, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestRepairDateDefaultsToNow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	if got := RepairDate("", now); !got.Equal(now) {
		t.Fatalf("empty date = %v, want now", got)
	}
	if got := RepairDate("not a date at all", now); !got.Equal(now) {
		t.Fatalf("garbage date = %v, want now", got)
	}
	if got := RepairOptionalDate("", now); got != nil {
		t.Fatalf("optional empty date = %v, want nil", got)
	}
}

func TestRepairDatePreservesZoneOffset(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	got := RepairDate("2001-02-10T19:30:00+05:30", now)
	if got.Year() != 2024 {
		t.Fatalf("year = %d, want 2024", got.Year())
	}
	_, offset := got.Zone()
	if offset != 5*3600+30*60 {
		t.Fatalf("zone offset = %d, want +05:30 preserved through the year rewrite", offset)
	}
	if got.Hour() != 19 || got.Minute() != 30 {
		t.Fatalf("wall clock = %02d:%02d, want 19:30", got.Hour(), got.Minute())
	}
}

func TestParsePriceMinor(t *testing.T) {
	tests := []struct {
		raw  string
		want *int64
	}{
		{"₹1500", int64Ptr(150000)},
		{"From $25.50", int64Ptr(2550)},
		{"Rs. 200", int64Ptr(20000)},
		{"Free", nil},
		{"", nil},
		{"TBD", nil},
	}

	for _, tt := range tests {
		got := ParsePriceMinor(tt.raw)
		switch {
		case tt.want == nil && got != nil:
			t.Fatalf("ParsePriceMinor(%q) = %d, want nil", tt.raw, *got)
		case tt.want != nil && got == nil:
			t.Fatalf("ParsePriceMinor(%q) = nil, want %d", tt.raw, *tt.want)
		case tt.want != nil && *got != *tt.want:
			t.Fatalf("ParsePriceMinor(%q) = %d, want %d", tt.raw, *got, *tt.want)
		}
	}
}

func TestPriceBounds(t *testing.T) {
	isPaid, min, max := PriceBounds([]string{"₹500", "₹1,200", "Sold out"})
	if !isPaid {
		t.Fatal("expected isPaid for parseable prices")
	}
	if min == nil || *min != 50000 {
		t.Fatalf("min = %v, want 50000", min)
	}
	if max == nil || *max != 120000 {
		t.Fatalf("max = %v, want 120000", max)
	}

	isPaid, min, max = PriceBounds(nil)
	if isPaid || min != nil || max != nil {
		t.Fatal("no prices must mean unpaid with nil bounds, not zero")
	}

	// Price strings with no parseable number never flag an event as paid.
	isPaid, min, max = PriceBounds([]string{"Sold out", "Free"})
	if isPaid || min != nil || max != nil {
		t.Fatal("unparseable prices must mean unpaid with nil bounds")
	}
}

func TestCoordsFromMapLink(t *testing.T) {
	resolver := geo.StaticResolver{}

	lat, lng := CoordsFromMapLink(
		"https://www.google.com/maps/place?data=!4m2!3m1!1s0x390d1d1bfd29596f:0x3b01784733155eee",
		"Pune", resolver)
	if lat == nil || lng == nil {
		t.Fatal("expected coordinates for a link with a place token")
	}
	if *lat != 18.5204 || *lng != 73.8567 {
		t.Fatalf("coords = (%v, %v), want Pune city-table coordinates", *lat, *lng)
	}

	lat, lng = CoordsFromMapLink("https://maps.google.com/?q=somewhere", "Pune", resolver)
	if lat != nil || lng != nil {
		t.Fatal("expected nil coordinates without a place token")
	}

	lat, lng = CoordsFromMapLink("", "Pune", resolver)
	if lat != nil || lng != nil {
		t.Fatal("expected nil coordinates for empty link")
	}
}

func TestNextSaturday(t *testing.T) {
	tests := []struct {
		now  string
		want string
	}{
		{"2024-06-10", "2024-06-15"}, // Monday -> coming Saturday
		{"2024-06-14", "2024-06-15"}, // Friday -> next day
		{"2024-06-15", "2024-06-22"}, // Saturday -> the following one
		{"2024-06-16", "2024-06-22"}, // Sunday
	}

	for _, tt := range tests {
		now, _ := time.Parse("2006-01-02", tt.now)
		got := NextSaturday(now)
		if got.Format("2006-01-02") != tt.want {
			t.Fatalf("NextSaturday(%s) = %s, want %s", tt.now, got.Format("2006-01-02"), tt.want)
		}
		if got.Weekday() != time.Saturday {
			t.Fatalf("NextSaturday(%s) fell on %s", tt.now, got.Weekday())
		}
	}
}

func int64Ptr(v int64) *int64 { return &v }
