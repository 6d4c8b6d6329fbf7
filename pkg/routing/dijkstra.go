package routing

import (
	"math"

	"flight_router/pkg/graph"
)

// noNode marks an empty predecessor slot.
const noNode = int32(-1)

// minHeap is a concrete-typed min-heap for the Dijkstra priority queue.
// Avoids interface boxing overhead of container/heap.
type minHeap struct {
	items []pqItem
}

// pqItem is a priority queue entry.
type pqItem struct {
	node int32
	dist float64
}

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Push(node int32, dist float64) {
	h.items = append(h.items, pqItem{node, dist})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) Pop() pqItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].dist >= h.items[parent].dist {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].dist < h.items[smallest].dist {
			smallest = left
		}
		if right < n && h.items[right].dist < h.items[smallest].dist {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// searchState holds the output of one shortest-path search.
type searchState struct {
	dist     []float64 // best known distance per node, +Inf if unreachable
	pred     []int32   // predecessor node, noNode for source/unreached
	predEdge []int32   // edge index used to reach the node, graph.NoEdge otherwise
}

// search runs a single-source shortest-path search from src, terminating
// early once dst is finalized. Uses lazy deletion: improved distances push
// duplicate heap entries and stale ones are skipped on extraction, so the
// heap never needs decrease-key. Ties between equal-distance candidates fall
// wherever extraction order puts them.
//
// O((V + E) log V) with the binary heap; V and E are small here but nothing
// depends on that.
func search(g *graph.RouteGraph, src, dst int32) searchState {
	n := g.NumNodes()
	st := searchState{
		dist:     make([]float64, n),
		pred:     make([]int32, n),
		predEdge: make([]int32, n),
	}
	for i := range st.dist {
		st.dist[i] = math.Inf(1)
		st.pred[i] = noNode
		st.predEdge[i] = graph.NoEdge
	}
	st.dist[src] = 0

	var pq minHeap
	pq.Push(src, 0)

	for pq.Len() > 0 {
		cur := pq.Pop()
		u := cur.node

		if cur.dist > st.dist[u] {
			continue // stale entry
		}
		if u == dst {
			break
		}

		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			v := g.Head[e]
			newDist := cur.dist + g.Weight[e]
			if newDist < st.dist[v] {
				st.dist[v] = newDist
				st.pred[v] = u
				st.predEdge[v] = e
				pq.Push(v, newDist)
			}
		}
	}

	return st
}
