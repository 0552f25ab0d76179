package tour

import (
	"fmt"

	"github.com/katalvlaran/diracroute/core"
)

// Hamiltonian searches exhaustively for a Hamiltonian cycle in g.
//
// Permutations of the vertex set are enumerated lazily in lexicographic
// order over the graph's canonical label ordering (the construction
// order fixed by the builder). A permutation matches when every
// consecutive pair — including the wrap-around pair last→first — is an
// edge of g. The FIRST match in enumeration order is returned as a
// closed Route of length n+1; ties between multiple valid cycles are
// therefore broken by enumeration order alone, which makes the answer
// reproducible across runs for identical inputs.
//
// Outcomes (branch with errors.Is):
//   - (route, nil)       — a cycle was found.
//   - (nil, ErrTooLarge) — NOT attempted: n > MaxExactVertices.
//   - (nil, ErrNoCycle)  — searched everything, no cycle exists
//     (also reported for degenerate n < 3, where a cycle is meaningless).
//
// This is an exact algorithm, not an approximation.
//
// Complexity: O(n!·n) time worst case, O(n) extra space — hence the cap.
func Hamiltonian(g *core.Graph) (Route, error) {
	n := g.VertexCount()
	if n > MaxExactVertices {
		return nil, fmt.Errorf("Hamiltonian: n=%d: %w", n, ErrTooLarge)
	}
	if n < 3 {
		return nil, fmt.Errorf("Hamiltonian: n=%d: %w", n, ErrNoCycle)
	}

	labels := g.Labels()

	// Dense adjacency over canonical indices; one map probe per pair up
	// front keeps the n!-loop allocation- and hash-free.
	adj := make([][]bool, n)

	var i, j int
	for i = 0; i < n; i++ {
		adj[i] = make([]bool, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.HasEdge(labels[i], labels[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	var (
		it   = newPermIter(n)
		perm []int
		ok   bool
	)
	for perm, ok = it.Next(); ok; perm, ok = it.Next() {
		if cycleInGraph(adj, perm) {
			route := make(Route, n+1)
			for i = 0; i < n; i++ {
				route[i] = labels[perm[i]]
			}
			route[n] = route[0]

			return route, nil
		}
	}

	return nil, fmt.Errorf("Hamiltonian: n=%d: %w", n, ErrNoCycle)
}

// cycleInGraph reports whether perm, read as a closed tour, uses only
// edges present in adj.
//
// Complexity: O(n).
func cycleInGraph(adj [][]bool, perm []int) bool {
	n := len(perm)

	var i int
	for i = 0; i < n-1; i++ {
		if !adj[perm[i]][perm[i+1]] {
			return false
		}
	}

	return adj[perm[n-1]][perm[0]]
}
