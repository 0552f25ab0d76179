// Package tour - route shape validation.
package tour

import "fmt"

// ValidateRoute enforces the closed-tour invariants for a route over n
// vertices:
//
//	len(r) == n+1, r[0] == r[n],
//	each label appears exactly once in positions [0..n-1].
//
// It checks shape only — labels are not resolved against any graph, so a
// Route can be validated independently of the snapshot that produced it.
// Returns nil if valid, ErrBadRoute otherwise.
//
// Complexity: O(n) time and space.
func ValidateRoute(r Route, n int) error {
	if n <= 0 {
		return fmt.Errorf("ValidateRoute: n=%d: %w", n, ErrBadRoute)
	}
	if len(r) != n+1 {
		return fmt.Errorf("ValidateRoute: len=%d, want %d: %w", len(r), n+1, ErrBadRoute)
	}
	if r[0] != r[n] {
		return fmt.Errorf("ValidateRoute: open route %q…%q: %w", r[0], r[n], ErrBadRoute)
	}

	seen := make(map[string]struct{}, n)

	var (
		i  int
		ok bool
	)
	for i = 0; i < n; i++ {
		if _, ok = seen[r[i]]; ok {
			return fmt.Errorf("ValidateRoute: label %q repeated: %w", r[i], ErrBadRoute)
		}
		seen[r[i]] = struct{}{}
	}

	return nil
}
