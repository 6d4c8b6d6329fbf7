// Package graph builds the per-query route graph: one node per dataset city
// and an undirected, airline-labeled edge between a hub and every city that
// hub's airline serves. Non-hub cities are never connected directly; the
// network is strictly hub-and-spoke.
package graph

// NoEdge marks the absence of an edge reference.
const NoEdge = int32(-1)

// RouteGraph is an adjacency structure in CSR (Compressed Sparse Row) form.
// Node indices follow dataset row order. Undirected edges are stored twice,
// once per direction, with the same weight and airline label. A RouteGraph is
// built fresh for each query and never mutated afterwards.
type RouteGraph struct {
	Cities []string         // len: NumNodes; node index -> city name
	Index  map[string]int32 // city name -> node index

	FirstOut []int32   // len: NumNodes + 1; FirstOut[i]..FirstOut[i+1] are edges from node i
	Head     []int32   // len: NumEdges; target node for each edge
	Weight   []float64 // len: NumEdges; distance in kilometers, verbatim from the dataset
	Airline  []string  // len: NumEdges; airline operating the edge
}

// NumNodes returns the number of city nodes.
func (g *RouteGraph) NumNodes() int { return len(g.Cities) }

// NumEdges returns the number of directed edge entries (two per route).
func (g *RouteGraph) NumEdges() int { return len(g.Head) }

// EdgesFrom returns the range of edge indices for edges originating from node u.
func (g *RouteGraph) EdgesFrom(u int32) (start, end int32) {
	return g.FirstOut[u], g.FirstOut[u+1]
}

// Node returns the index of the named city, or NoEdge if absent.
func (g *RouteGraph) Node(city string) int32 {
	if i, ok := g.Index[city]; ok {
		return i
	}
	return NoEdge
}
