package geo

import "strings"

// Coordinates is a plain lat/lng pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Resolver maps a city name to approximate coordinates. The static table
// below is the only implementation today; a real geocoding service can be
// dropped in behind this interface without touching the callers.
type Resolver interface {
	// Resolve returns the coordinates for a city name and whether the
	// city was actually recognized.
	Resolve(city string) (Coordinates, bool)
}

// DefaultCity is where unrecognized city names land. Known imprecision:
// callers get plausible-but-wrong data for an unknown city instead of an
// error, matching the behavior the frontend was built against.
const DefaultCity = "delhi"

// StaticResolver resolves against a hardcoded table of major Indian cities.
type StaticResolver struct{}

var cityTable = map[string]Coordinates{
	"delhi":          {28.6139, 77.2090},
	"mumbai":         {19.0760, 72.8777},
	"bangalore":      {12.9716, 77.5946},
	"bengaluru":      {12.9716, 77.5946},
	"kolkata":        {22.5726, 88.3639},
	"chennai":        {13.0827, 80.2707},
	"hyderabad":      {17.3850, 78.4867},
	"pune":           {18.5204, 73.8567},
	"ahmedabad":      {23.0225, 72.5714},
	"jaipur":         {26.9124, 75.7873},
	"lucknow":        {26.8467, 80.9462},
	"kanpur":         {26.4499, 80.3319},
	"nagpur":         {21.1458, 79.0882},
	"indore":         {22.7196, 75.8577},
	"thane":          {19.2183, 72.9781},
	"bhopal":         {23.2599, 77.4126},
	"visakhapatnam":  {17.6868, 83.2185},
	"pimpri":         {18.6298, 73.8000},
	"patna":          {25.5941, 85.1376},
	"vadodara":       {22.3072, 73.1812},
	"ludhiana":       {30.9010, 75.8573},
	"agra":           {27.1767, 78.0081},
	"nashik":         {19.9975, 73.7898},
	"faridabad":      {28.4089, 77.3178},
	"meerut":         {28.9845, 77.7064},
	"rajkot":         {22.3039, 70.8022},
	"kalyan":         {19.2437, 73.1355},
	"vasai":          {19.4882, 72.8058},
	"varanasi":       {25.3176, 82.9739},
	"srinagar":       {34.0837, 74.7973},
	"aurangabad":     {19.8762, 75.3433},
	"dhanbad":        {23.7957, 86.4304},
	"amritsar":       {31.6340, 74.8723},
	"navi mumbai":    {19.0330, 73.0297},
	"allahabad":      {25.4358, 81.8463},
	"prayagraj":      {25.4358, 81.8463},
	"ranchi":         {23.3441, 85.3096},
	"howrah":         {22.5958, 88.2636},
	"coimbatore":     {11.0168, 76.9558},
	"jabalpur":       {23.1815, 79.9864},
	"gwalior":        {26.2183, 78.1828},
	"vijayawada":     {16.5062, 80.6480},
	"jodhpur":        {26.2389, 73.0243},
	"madurai":        {9.9252, 78.1198},
	"raipur":         {21.2514, 81.6296},
	"kota":           {25.2138, 75.8648},
	"chandigarh":     {30.7333, 76.7794},
	"guwahati":       {26.1445, 91.7362},
}

func (StaticResolver) Resolve(city string) (Coordinates, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	coords, ok := cityTable[key]
	if !ok {
		return cityTable[DefaultCity], false
	}
	return coords, true
}

// ResolveOrDefault is the convenience form used by callers that accept the
// default-city fallback.
func ResolveOrDefault(r Resolver, city string) Coordinates {
	coords, _ := r.Resolve(city)
	return coords
}
