package geo

import "testing"

func TestResolveKnownCities(t *testing.T) {
	tests := []struct {
		city string
		lat  float64
		lng  float64
	}{
		{"Delhi", 28.6139, 77.2090},
		{"  mumbai ", 19.0760, 72.8777},
		{"BENGALURU", 12.9716, 77.5946},
		{"Navi Mumbai", 19.0330, 73.0297},
		{"prayagraj", 25.4358, 81.8463},
	}

	r := StaticResolver{}
	for _, tt := range tests {
		coords, ok := r.Resolve(tt.city)
		if !ok {
			t.Fatalf("Resolve(%q) reported unknown city", tt.city)
		}
		if coords.Lat != tt.lat || coords.Lng != tt.lng {
			t.Fatalf("Resolve(%q) = %v, want (%v, %v)", tt.city, coords, tt.lat, tt.lng)
		}
	}
}

func TestResolveUnknownCityFallsBackToDelhi(t *testing.T) {
	r := StaticResolver{}

	coords, ok := r.Resolve("unknownplace")
	if ok {
		t.Fatal("Resolve reported unknownplace as a known city")
	}
	if coords.Lat != 28.6139 || coords.Lng != 77.2090 {
		t.Fatalf("unknown city resolved to %v, want Delhi coordinates", coords)
	}

	// Empty input lands on the same default.
	empty, _ := r.Resolve("")
	if empty != coords {
		t.Fatalf("empty city resolved to %v, want %v", empty, coords)
	}
}
