// Package core - Graph construction.
//
// NewGraph is the only way to obtain a Graph; it validates every input
// invariant up front and copies everything it keeps, so the returned
// snapshot cannot be mutated through the caller's slices.
package core

import (
	"fmt"
	"math"
)

// Graph is an immutable undirected proximity graph: an ordered vertex set
// plus an edge set with Euclidean weights. The zero value is not usable;
// construct via NewGraph.
type Graph struct {
	// labels holds vertex IDs in construction order. This order is the
	// canonical label ordering used by every algorithm in the module.
	labels []string

	// points holds vertex positions, parallel to labels.
	points []Point

	// index maps a vertex ID to its position in labels.
	index map[string]int

	// adj maps, per vertex index, neighbor index → edge weight.
	adj []map[int]float64

	// edges lists every edge once, in insertion order, U before V in
	// construction order.
	edges []Edge
}

// NewGraph builds an immutable Graph from a vertex list and an edge list.
//
// Contract:
//   - vertex IDs must be non-empty and unique (ErrEmptyVertexID,
//     ErrDuplicateVertexID);
//   - every edge endpoint must name a supplied vertex (ErrVertexNotFound);
//   - no self-loops (ErrLoopNotAllowed), no repeated unordered pairs
//     (ErrMultiEdgeNotAllowed);
//   - weights must be finite and non-negative (ErrBadWeight).
//
// The vertex order of the argument slice becomes the Graph's canonical
// label ordering; it never depends on map iteration.
//
// Complexity: O(V + E) time and space.
func NewGraph(vertices []Vertex, edges []Edge) (*Graph, error) {
	g := &Graph{
		labels: make([]string, 0, len(vertices)),
		points: make([]Point, 0, len(vertices)),
		index:  make(map[string]int, len(vertices)),
		adj:    make([]map[int]float64, len(vertices)),
		edges:  make([]Edge, 0, len(edges)),
	}

	var (
		i int
		v Vertex
	)
	for i, v = range vertices {
		if v.ID == "" {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrEmptyVertexID)
		}
		if _, dup := g.index[v.ID]; dup {
			return nil, fmt.Errorf("vertex %q: %w", v.ID, ErrDuplicateVertexID)
		}
		g.index[v.ID] = i
		g.labels = append(g.labels, v.ID)
		g.points = append(g.points, v.At)
		g.adj[i] = make(map[int]float64)
	}

	var (
		e        Edge
		ui, vi   int
		found    bool
		existing bool
	)
	for _, e = range edges {
		if ui, found = g.index[e.U]; !found {
			return nil, fmt.Errorf("edge {%s,%s}: %q: %w", e.U, e.V, e.U, ErrVertexNotFound)
		}
		if vi, found = g.index[e.V]; !found {
			return nil, fmt.Errorf("edge {%s,%s}: %q: %w", e.U, e.V, e.V, ErrVertexNotFound)
		}
		if ui == vi {
			return nil, fmt.Errorf("edge {%s,%s}: %w", e.U, e.V, ErrLoopNotAllowed)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return nil, fmt.Errorf("edge {%s,%s}: weight %v: %w", e.U, e.V, e.Weight, ErrBadWeight)
		}
		if _, existing = g.adj[ui][vi]; existing {
			return nil, fmt.Errorf("edge {%s,%s}: %w", e.U, e.V, ErrMultiEdgeNotAllowed)
		}

		// Normalize endpoint order to construction order.
		if ui > vi {
			ui, vi = vi, ui
		}
		g.adj[ui][vi] = e.Weight
		g.adj[vi][ui] = e.Weight
		g.edges = append(g.edges, Edge{U: g.labels[ui], V: g.labels[vi], Weight: e.Weight})
	}

	return g, nil
}
