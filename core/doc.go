// Package core defines the central Graph, Vertex, Edge and Point types
// for planar proximity graphs.
//
// A Graph is an immutable snapshot: it is fully constructed once (usually
// by the builder package) and never mutated afterwards, so it can be read
// from anywhere without locks. All accessor methods return copies — the
// internal vertex order, point table and adjacency sets are never exposed
// by reference.
//
// Invariants enforced at construction time:
//
//   - vertex IDs are non-empty and unique;
//   - edges are undirected, connect two existing distinct vertices
//     (no self-loops), and no unordered pair appears twice;
//   - edge weights are finite and non-negative (Euclidean distances).
//
// Edge weights are stored at full float64 precision; RoundedWeight gives
// the fixed two-decimal form used for display only. Search and cost logic
// must always read Weight.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertexID   - the same ID was supplied twice.
//	ErrVertexNotFound      - an operation referenced a non-existent vertex.
//	ErrEdgeNotFound        - the requested unordered pair is not an edge.
//	ErrLoopNotAllowed      - an edge connects a vertex to itself.
//	ErrMultiEdgeNotAllowed - an unordered pair was supplied twice.
//	ErrBadWeight           - edge weight is negative, NaN or infinite.
package core
