package opt

import "routeopt/internal/geo"

// BruteForce enumerates every permutation of the points in lexicographic
// order over input indices and returns the minimum-cost tour. Exact ties
// keep the first permutation encountered, so results are reproducible.
// Valid only for 3 ≤ n ≤ maxExact (n! permutations are scanned); outside
// that bound it returns ErrSizeOutOfRange without enumerating.
//
// Closed tours (open=false) include the return leg in the cost. The
// returned order has length n, without a closing repeat.
func BruteForce(points []geo.Point, open bool, u geo.Unit, maxExact int, onIncumbent func(Incumbent)) ([]int, float64, error) {
	if maxExact == 0 {
		maxExact = DefaultMaxExact
	}
	if maxExact < 3 {
		return nil, 0, ErrBadMaxExact
	}
	n := len(points)
	if n < 3 || n > maxExact {
		return nil, 0, ErrSizeOutOfRange
	}

	m := geo.Matrix(points, u)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		best     []int
		bestCost float64
		found    bool
		permIdx  int64
	)
	for {
		c := matrixCost(m, perm, !open)
		// Strict < keeps the earliest permutation on exact ties.
		if !found || c < bestCost {
			found = true
			bestCost = c
			best = append(best[:0], perm...)
			if onIncumbent != nil {
				onIncumbent(Incumbent{Order: incumbentOrder(best, !open), Total: roundStable(c), Perm: permIdx})
			}
		}
		if !nextPermutation(perm) {
			break
		}
		permIdx++
	}
	return best, roundStable(bestCost), nil
}

func incumbentOrder(order []int, closed bool) []int {
	out := make([]int, len(order), len(order)+1)
	copy(out, order)
	if closed {
		out = append(out, order[0])
	}
	return out
}

// nextPermutation advances p to its lexicographic successor in place,
// returning false once p is the final (descending) permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
