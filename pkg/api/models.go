package api

// RouteRequest is the JSON body for POST /api/v1/route.
type RouteRequest struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Airlines    []string `json:"airlines,omitempty"` // empty means all supported
	Compare     bool     `json:"compare,omitempty"`
}

// RouteResponse is the JSON response for a successful route query.
type RouteResponse struct {
	TotalDistanceKm float64         `json:"total_distance_km"`
	Path            []string        `json:"path"`
	Legs            []LegJSON       `json:"legs"`
	Airlines        []string        `json:"airlines"`
	Comparison      *ComparisonJSON `json:"comparison,omitempty"`
}

// LegJSON represents one flight leg in the response.
type LegJSON struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Airline string `json:"airline"`
	Color   string `json:"color"`
}

// ComparisonJSON is the unrestricted shortest path for the same endpoints.
type ComparisonJSON struct {
	TotalDistanceKm float64  `json:"total_distance_km"`
	Path            []string `json:"path"`
	DifferenceKm    float64  `json:"difference_km"`
}

// AirlineJSON describes one supported airline for GET /api/v1/airlines.
type AirlineJSON struct {
	Name  string `json:"name"`
	Hub   string `json:"hub"`
	Color string `json:"color"`
}

// NearestResponse is the JSON response for GET /api/v1/cities/nearest.
type NearestResponse struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	NumCities   int            `json:"num_cities"`
	NumAirlines int            `json:"num_airlines"`
	Serving     map[string]int `json:"cities_served"` // per-airline served city count
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
