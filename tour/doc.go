// Package tour finds and evaluates closed routes over a proximity graph.
//
// It provides three operations, all pure functions over an immutable
// core.Graph snapshot:
//
//   - Hamiltonian — exhaustive, edge-constrained search for a Hamiltonian
//     cycle. Permutations of the vertex set are enumerated lazily in
//     lexicographic order over the graph's canonical label ordering and
//     the first closed cycle wins, so the answer is reproducible even
//     when several cycles exist. Cost is O(n!·n) in the worst case, which
//     is why instances above MaxExactVertices are refused outright
//     (ErrTooLarge, "not attempted") — a distinct outcome from a search
//     that ran and found nothing (ErrNoCycle).
//
//   - NearestNeighbor — greedy geometric tour from a start vertex. It
//     measures Euclidean distance over all vertex pairs, not only graph
//     edges, so it always succeeds; the contrast with the edge-constrained
//     exact search is deliberate.
//
//   - Cost — total Euclidean length of any closed Route, full precision,
//     stabilized to 1e-9 so that summation order cannot leak into
//     comparisons.
//
// A Route is an independent value object: an ordered label sequence of
// length n+1 with the start repeated at the end. It references labels,
// not the Graph, so it can outlive a rebuilt graph; ValidateRoute checks
// a route's shape against a vertex count before reuse.
package tour
