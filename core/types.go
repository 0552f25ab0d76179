// Package core - fundamental value types and sentinel errors.
//
// This file declares Point, Vertex, Edge and the package sentinels.
// The Graph type and its constructor live in graph.go; read accessors
// live in methods.go.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
// Callers must branch with errors.Is; messages are part of the contract.
var (
	// ErrEmptyVertexID indicates that a supplied Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertexID indicates the same vertex ID was supplied twice.
	ErrDuplicateVertexID = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates the requested unordered pair is not an edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge connecting a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a repeated unordered vertex pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// displayScale fixes the decimal precision of RoundedWeight (2 places).
const displayScale = 100

// Point is a position in the plane. Coordinates produced by the builder
// lie inside [0,1]×[0,1]; core itself does not restrict the range.
type Point struct {
	// X is the horizontal coordinate.
	X float64

	// Y is the vertical coordinate.
	Y float64
}

// Dist returns the Euclidean distance between two points.
//
// Complexity: O(1).
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Vertex is a labeled point. ID uniquely identifies the vertex within its
// Graph; At is its position. A Vertex is created once per run and never
// mutated.
type Vertex struct {
	// ID is the stable label of this vertex (e.g. "A", "B", …).
	ID string

	// At is the vertex position in the plane.
	At Point
}

// Edge is an unordered pair of distinct vertex IDs with a Euclidean
// weight. U always carries the endpoint that comes first in the Graph's
// construction order; callers must treat {U,V} as unordered.
type Edge struct {
	// U is the first endpoint in construction order.
	U string

	// V is the second endpoint.
	V string

	// Weight is the full-precision Euclidean distance between the
	// endpoints' points. Never negative.
	Weight float64
}

// RoundedWeight returns Weight rounded to two decimal places.
// Display-only: search and cost logic must use Weight.
//
// Complexity: O(1).
func (e Edge) RoundedWeight() float64 {
	return math.Round(e.Weight*displayScale) / displayScale
}
