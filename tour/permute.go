// Package tour - lazy lexicographic permutation enumeration.
//
// The exact search must visit orderings in a fixed deterministic order so
// that "first matching permutation" means the same thing on every run.
// permIter produces the n! permutations of {0..n-1} one at a time in
// lexicographic order, without ever materializing more than one, and can
// be restarted with Reset.
package tour

// permIter enumerates permutations of {0..n-1} lexicographically,
// starting from the identity. The zero value is not usable; construct
// with newPermIter.
type permIter struct {
	cur     []int
	started bool
	done    bool
}

// newPermIter returns an iterator over the permutations of {0..n-1}.
// For n == 0 the iterator is immediately exhausted.
//
// Complexity: O(n) time and space.
func newPermIter(n int) *permIter {
	it := &permIter{cur: make([]int, n)}
	it.Reset()

	return it
}

// Reset rewinds the iterator to the identity permutation.
//
// Complexity: O(n).
func (it *permIter) Reset() {
	var i int
	for i = range it.cur {
		it.cur[i] = i
	}
	it.started = false
	it.done = len(it.cur) == 0
}

// Next returns the next permutation in lexicographic order and true, or
// (nil, false) once all n! orderings have been produced.
//
// The returned slice is the iterator's internal buffer, valid only until
// the following Next or Reset call; callers that retain it must copy.
//
// Complexity: amortized O(1) per call, worst case O(n).
func (it *permIter) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if !it.started {
		it.started = true

		return it.cur, true
	}

	// Classic lexicographic successor:
	// 1) largest k with cur[k] < cur[k+1]; none ⇒ last permutation.
	var (
		a = it.cur
		n = len(a)
		k = n - 2
	)
	for k >= 0 && a[k] >= a[k+1] {
		k--
	}
	if k < 0 {
		it.done = true

		return nil, false
	}

	// 2) largest l > k with cur[l] > cur[k]; swap.
	var l = n - 1
	for a[l] <= a[k] {
		l--
	}
	a[k], a[l] = a[l], a[k]

	// 3) reverse the suffix after k.
	var i, j int
	for i, j = k+1, n-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}

	return a, true
}
