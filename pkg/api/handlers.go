package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"
	"sort"
	"strconv"

	"flight_router/pkg/airline"
	"flight_router/pkg/dataset"
	"flight_router/pkg/routing"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	planner routing.Planner
	cities  *dataset.Table
	index   *routing.CityIndex
	stats   StatsResponse
}

// NewHandlers creates handlers with the given planner and city data.
func NewHandlers(planner routing.Planner, cities *dataset.Table, index *routing.CityIndex) *Handlers {
	serving := make(map[string]int, len(airline.Supported()))
	for _, name := range airline.Supported() {
		for _, city := range cities.Cities() {
			if airline.Serves(name, city) {
				serving[name]++
			}
		}
	}
	return &Handlers{
		planner: planner,
		cities:  cities,
		index:   index,
		stats: StatsResponse{
			NumCities:   cities.Len(),
			NumAirlines: len(airline.Supported()),
			Serving:     serving,
		},
	}
}

// HandleRoute handles POST /api/v1/route.
func (h *Handlers) HandleRoute(w http.ResponseWriter, r *http.Request) {
	// Enforce Content-Type.
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	// Parse request.
	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	if req.Source == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "source")
		return
	}
	if req.Destination == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "destination")
		return
	}

	plan, err := h.planner.Plan(r.Context(), req.Source, req.Destination, req.Airlines, req.Compare)
	if err != nil {
		if errors.Is(err, airline.ErrUnsupportedAirline) {
			writeError(w, http.StatusBadRequest, "unsupported_airline", "airlines")
			return
		}
		if errors.Is(err, routing.ErrUnknownCity) {
			writeError(w, http.StatusNotFound, "unknown_city", "")
			return
		}
		if errors.Is(err, routing.ErrNoRoute) {
			writeError(w, http.StatusNotFound, "no_route_found", "")
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	// Build response.
	resp := RouteResponse{
		TotalDistanceKm: plan.Route.TotalKm,
		Path:            plan.Route.Cities,
		Airlines:        plan.Airlines,
	}
	for _, leg := range plan.Route.Legs {
		resp.Legs = append(resp.Legs, LegJSON{
			From:    leg.From,
			To:      leg.To,
			Airline: leg.Airline,
			Color:   airline.Color(leg.Airline),
		})
	}
	if plan.Comparison != nil {
		resp.Comparison = &ComparisonJSON{
			TotalDistanceKm: plan.Comparison.TotalKm,
			Path:            plan.Comparison.Cities,
			DifferenceKm:    plan.Comparison.DifferenceKm,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleAirlines handles GET /api/v1/airlines.
func (h *Handlers) HandleAirlines(w http.ResponseWriter, r *http.Request) {
	names := airline.Supported()
	out := make([]AirlineJSON, 0, len(names))
	for _, name := range names {
		hub, err := airline.HubOf(name)
		if err != nil {
			continue
		}
		out = append(out, AirlineJSON{Name: name, Hub: hub, Color: airline.Color(name)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// HandleCities handles GET /api/v1/cities. Names are sorted for display;
// dataset order only matters to the graph builder.
func (h *Handlers) HandleCities(w http.ResponseWriter, r *http.Request) {
	cities := h.cities.Cities()
	sort.Strings(cities)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cities)
}

// HandleNearestCity handles GET /api/v1/cities/nearest?lat=..&lng=..
func (h *Handlers) HandleNearestCity(w http.ResponseWriter, r *http.Request) {
	lat, err := parseCoord(r.URL.Query().Get("lat"), 90)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "lat")
		return
	}
	lng, err := parseCoord(r.URL.Query().Get("lng"), 180)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_coordinates", "lng")
		return
	}

	nearest, ok := h.index.Nearest(lat, lng)
	if !ok {
		writeError(w, http.StatusNotFound, "no_cities_loaded", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NearestResponse{
		City:       nearest.City,
		Country:    nearest.Country,
		Lat:        nearest.Lat,
		Lng:        nearest.Lng,
		DistanceKm: nearest.DistKm,
	})
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.stats)
}

func parseCoord(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, errors.New("coordinate out of range")
	}
	return v, nil
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
