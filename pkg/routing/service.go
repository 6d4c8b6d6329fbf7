package routing

import (
	"context"

	"flight_router/pkg/airline"
	"flight_router/pkg/dataset"
	"flight_router/pkg/graph"
)

// Comparison is the unrestricted (all airlines) shortest path for the same
// endpoints, attached to a plan when the caller asked to compare a restricted
// selection against the open network.
type Comparison struct {
	TotalKm      float64
	Cities       []string
	DifferenceKm float64 // restricted total minus open-network total; never negative
}

// Plan is the full answer to one route query.
type Plan struct {
	Airlines   []string
	Route      Result
	Comparison *Comparison // nil unless requested and computable
}

// Planner answers route queries. Implemented by Service; declared as an
// interface so HTTP handlers can be tested against a stub.
type Planner interface {
	Plan(ctx context.Context, source, dest string, airlines []string, compare bool) (*Plan, error)
}

// Service plans routes over a shared read-only city table. Each query builds
// its own RouteGraph, so concurrent calls need no locking.
type Service struct {
	table *dataset.Table
}

// NewService creates a Service over the given table.
func NewService(t *dataset.Table) *Service {
	return &Service{table: t}
}

// Plan builds the airline-restricted graph, runs the airline-aware search,
// and, when compare is set and the selection is a strict subset of the
// supported airlines, also runs the standard search over the full network.
// A full-network search that finds nothing simply yields no comparison; the
// restricted result stands on its own.
// An empty selection means every supported airline.
func (s *Service) Plan(ctx context.Context, source, dest string, airlines []string, compare bool) (*Plan, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if len(airlines) == 0 {
		airlines = airline.Supported()
	}

	g, err := graph.Build(s.table, airlines)
	if err != nil {
		return nil, err
	}

	result, err := AirlineAware(g, source, dest)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Airlines: airlines,
		Route:    *result,
	}

	if !compare || coversAllAirlines(airlines) {
		return plan, nil
	}
	if ctx.Err() != nil {
		// The caller stopped listening between the two searches.
		return nil, ctx.Err()
	}

	full, err := graph.Build(s.table, airline.Supported())
	if err != nil {
		return nil, err
	}
	totalKm, cities, err := Standard(full, source, dest)
	if err != nil {
		return plan, nil
	}
	plan.Comparison = &Comparison{
		TotalKm:      totalKm,
		Cities:       cities,
		DifferenceKm: result.TotalKm - totalKm,
	}
	return plan, nil
}

// coversAllAirlines reports whether the selection already includes every
// supported airline, making a comparison redundant.
func coversAllAirlines(names []string) bool {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range airline.Supported() {
		if !seen[n] {
			return false
		}
	}
	return true
}
