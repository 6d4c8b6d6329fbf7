package graph

import (
	"flight_router/pkg/airline"
	"flight_router/pkg/dataset"
)

// rawEdge is a directed edge collected before CSR assembly.
type rawEdge struct {
	from, to int32
	weight   float64
	airline  string
}

// Build constructs the route graph for the given city table and airline
// selection. It fails with airline.ErrUnsupportedAirline (and returns no
// partial graph) if any requested airline is outside the fixed set.
//
// For each requested airline the builder locates the airline's hub row and
// adds an undirected edge to every other city the airline serves, weighted by
// that city's precomputed distance-to-hub column. An airline whose hub is
// absent from the table is skipped silently: a dataset without a hub simply
// contributes no routes for that airline. Edges with unknown or non-finite
// stored distances are skipped the same way.
//
// Building is deterministic: the same table content and airline order always
// yield identical node indices and edge order.
func Build(t *dataset.Table, airlines []string) (*RouteGraph, error) {
	hubs := make([]string, len(airlines))
	for i, a := range airlines {
		hub, err := airline.HubOf(a)
		if err != nil {
			return nil, err
		}
		hubs[i] = hub
	}

	n := t.Len()
	g := &RouteGraph{
		Cities: t.Cities(),
		Index:  make(map[string]int32, n),
	}
	for i, city := range g.Cities {
		g.Index[city] = int32(i)
	}

	var edges []rawEdge
	for i, a := range airlines {
		hi, ok := g.Index[hubs[i]]
		if !ok {
			continue // hub city absent from dataset: degrade gracefully
		}
		for ci := int32(0); ci < int32(n); ci++ {
			if ci == hi {
				continue
			}
			city := g.Cities[ci]
			if !airline.Serves(a, city) {
				continue
			}
			km, ok := t.Row(int(ci)).DistanceTo(hubs[i])
			if !ok {
				continue
			}
			edges = append(edges,
				rawEdge{from: hi, to: ci, weight: km, airline: a},
				rawEdge{from: ci, to: hi, weight: km, airline: a},
			)
		}
	}

	// CSR assembly via counting sort on the source node. Stable placement
	// preserves insertion order within each node, keeping builds deterministic.
	g.FirstOut = make([]int32, n+1)
	g.Head = make([]int32, len(edges))
	g.Weight = make([]float64, len(edges))
	g.Airline = make([]string, len(edges))

	for _, e := range edges {
		g.FirstOut[e.from+1]++
	}
	for i := 1; i <= n; i++ {
		g.FirstOut[i] += g.FirstOut[i-1]
	}

	pos := make([]int32, n)
	copy(pos, g.FirstOut[:n])
	for _, e := range edges {
		idx := pos[e.from]
		g.Head[idx] = e.to
		g.Weight[idx] = e.weight
		g.Airline[idx] = e.airline
		pos[e.from]++
	}

	return g, nil
}
