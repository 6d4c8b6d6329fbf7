// Package routing runs airline-aware shortest-path queries over a route
// graph and reconstructs the resulting itinerary.
package routing

import (
	"errors"
	"fmt"
	"math"

	"flight_router/pkg/graph"
)

// ErrNoRoute is returned when no path connects source and destination.
var ErrNoRoute = errors.New("no route found")

// ErrUnknownCity is returned when source or destination is not a graph node.
var ErrUnknownCity = errors.New("city not in dataset")

// errBadTrace signals a malformed predecessor trace. It cannot occur on a
// graph produced by graph.Build; hitting it means an internal defect, not bad
// user input.
var errBadTrace = errors.New("internal: malformed predecessor trace")

// Leg is one flown edge of an itinerary, attributed to the airline whose
// rules permitted it.
type Leg struct {
	From    string
	To      string
	Airline string
}

// Result is a successful airline-aware query: the total distance, the city
// sequence from source to destination inclusive, and the attributed legs.
// The caller owns the Result; nothing retains it.
type Result struct {
	TotalKm float64
	Cities  []string
	Legs    []Leg
}

// AirlineAware computes the minimum-distance itinerary between two cities on
// the given graph, with per-leg airline attribution. Returns ErrUnknownCity
// if either endpoint is not a node, ErrNoRoute if the endpoints are not
// connected. Source equal to destination yields the trivial zero-distance,
// single-city result.
func AirlineAware(g *graph.RouteGraph, source, dest string) (*Result, error) {
	src := g.Node(source)
	dst := g.Node(dest)
	if src == graph.NoEdge || dst == graph.NoEdge {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, missingOf(g, source, dest))
	}

	st := search(g, src, dst)
	if math.IsInf(st.dist[dst], 1) {
		return nil, ErrNoRoute
	}

	nodes, err := tracePath(st, src, dst)
	if err != nil {
		return nil, err
	}

	result := &Result{
		TotalKm: st.dist[dst],
		Cities:  make([]string, len(nodes)),
	}
	for i, u := range nodes {
		result.Cities[i] = g.Cities[u]
	}
	for i := 1; i < len(nodes); i++ {
		e := st.predEdge[nodes[i]]
		if e == graph.NoEdge {
			// Every edge the builder creates carries an airline label, so an
			// unattributed leg can only come from a corrupted trace.
			return nil, fmt.Errorf("%w: leg %s->%s has no edge", errBadTrace,
				g.Cities[nodes[i-1]], g.Cities[nodes[i]])
		}
		result.Legs = append(result.Legs, Leg{
			From:    g.Cities[nodes[i-1]],
			To:      g.Cities[nodes[i]],
			Airline: g.Airline[e],
		})
	}

	return result, nil
}

// Standard computes the shortest path ignoring airline attribution. It runs
// the same search over whatever graph it is given; callers comparing against
// the open network pass a graph built with every airline selected.
func Standard(g *graph.RouteGraph, source, dest string) (float64, []string, error) {
	src := g.Node(source)
	dst := g.Node(dest)
	if src == graph.NoEdge || dst == graph.NoEdge {
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownCity, missingOf(g, source, dest))
	}

	st := search(g, src, dst)
	if math.IsInf(st.dist[dst], 1) {
		return 0, nil, ErrNoRoute
	}

	nodes, err := tracePath(st, src, dst)
	if err != nil {
		return 0, nil, err
	}
	cities := make([]string, len(nodes))
	for i, u := range nodes {
		cities[i] = g.Cities[u]
	}
	return st.dist[dst], cities, nil
}

// tracePath walks predecessor links from dst back to src and returns the
// node sequence in source-to-destination order. A trace that loops or runs
// out of links before reaching src is a defect in the search, reported as
// errBadTrace.
func tracePath(st searchState, src, dst int32) ([]int32, error) {
	var rev []int32
	cur := dst
	for steps := 0; ; steps++ {
		if steps > len(st.pred) {
			return nil, fmt.Errorf("%w: cycle detected", errBadTrace)
		}
		rev = append(rev, cur)
		if cur == src {
			break
		}
		next := st.pred[cur]
		if next == noNode {
			return nil, fmt.Errorf("%w: trace broke before source", errBadTrace)
		}
		cur = next
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}

// missingOf names whichever endpoint is absent, for error context.
func missingOf(g *graph.RouteGraph, source, dest string) string {
	if g.Node(source) == graph.NoEdge {
		return source
	}
	return dest
}
