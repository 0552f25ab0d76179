// Package core - read accessors over the immutable Graph snapshot.
//
// Every method is safe for concurrent use (the snapshot never changes)
// and returns copies, never internal slices or maps.
package core

import "fmt"

// VertexCount returns the number of vertices n.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.labels)
}

// EdgeCount returns the number of edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Labels returns the vertex IDs in canonical (construction) order.
//
// Complexity: O(V) time and space (copy).
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Vertices returns the vertex set, in canonical order, with positions.
//
// Complexity: O(V) time and space (copy).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.labels))

	var i int
	for i = range g.labels {
		out[i] = Vertex{ID: g.labels[i], At: g.points[i]}
	}

	return out
}

// Edges returns every edge once, in insertion order.
//
// Complexity: O(E) time and space (copy).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Point returns the position of the vertex with the given ID, or
// ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Point(id string) (Point, error) {
	i, ok := g.index[id]
	if !ok {
		return Point{}, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
	}

	return g.points[i], nil
}

// HasVertex reports whether id names a vertex of the graph.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether {u,v} is an edge. Order of the arguments is
// irrelevant; unknown IDs and u==v simply report false.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	ui, ok := g.index[u]
	if !ok {
		return false
	}
	vi, ok := g.index[v]
	if !ok {
		return false
	}
	_, ok = g.adj[ui][vi]

	return ok
}

// Weight returns the full-precision weight of edge {u,v}.
// It returns ErrVertexNotFound for unknown IDs and ErrEdgeNotFound when
// the pair is not connected.
//
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	ui, ok := g.index[u]
	if !ok {
		return 0, fmt.Errorf("%q: %w", u, ErrVertexNotFound)
	}
	vi, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("%q: %w", v, ErrVertexNotFound)
	}
	w, ok := g.adj[ui][vi]
	if !ok {
		return 0, fmt.Errorf("{%s,%s}: %w", u, v, ErrEdgeNotFound)
	}

	return w, nil
}

// Degree returns the number of edges incident to the vertex with the
// given ID, or ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
	}

	return len(g.adj[i]), nil
}
