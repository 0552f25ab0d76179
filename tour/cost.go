// Package tour - route cost evaluation.
//
// Cost is geometric on purpose: it sums Euclidean distances between
// consecutive points, whether or not each hop is a proximity-graph edge,
// so it prices exact cycles and edge-independent heuristic routes with
// the same ruler.
package tour

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diracroute/core"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms and summation orders without
// affecting any comparison that matters at this scale.
const roundScale = 1e9

// Cost returns the total Euclidean length of route r over the point data
// of g: the sum of consecutive-pair distances, including the closing hop
// already present in a well-formed closed Route.
//
// Pure, deterministic and total for well-formed inputs. Errors:
//   - ErrBadRoute for fewer than two entries;
//   - core.ErrVertexNotFound when a label is not in g (e.g. a Route that
//     outlived a rebuilt graph).
//
// Complexity: O(len(r)).
func Cost(g *core.Graph, r Route) (float64, error) {
	if len(r) < 2 {
		return 0, fmt.Errorf("Cost: %d entries: %w", len(r), ErrBadRoute)
	}

	var (
		sum  float64
		i    int
		p, q core.Point
		err  error
	)
	p, err = g.Point(r[0])
	if err != nil {
		return 0, fmt.Errorf("Cost: %w", err)
	}

	for i = 1; i < len(r); i++ {
		q, err = g.Point(r[i])
		if err != nil {
			return 0, fmt.Errorf("Cost: %w", err)
		}
		sum += core.Dist(p, q)
		p = q
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
