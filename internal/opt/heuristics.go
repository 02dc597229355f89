package opt

import "routeopt/internal/geo"

// improveEps guards 2-opt acceptance against floating-point churn.
const improveEps = 1e-9

// Improve2Opt applies a simple 2-opt pass to reduce total distance of a
// heuristic tour. The start point (order[0]) stays fixed; interior
// segments are reversed while reversals strictly improve the cost. It
// never runs on exact results and never upgrades a tour's guarantee:
// the output is still a heuristic.
func Improve2Opt(points []geo.Point, order []int, open bool, u geo.Unit, iterations int) ([]int, float64) {
	if iterations <= 0 {
		iterations = 1
	}
	m := geo.Matrix(points, u)
	closed := !open

	best := append([]int(nil), order...)
	bestDist := matrixCost(m, best, closed)
	n := len(order)

	// For open tours the final point may move; for closed tours the
	// closing leg makes position n-1 interior as well.
	for it := 0; it < iterations; it++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				candidate := twoOptSwap(best, i, k)
				d := matrixCost(m, candidate, closed)
				if d+improveEps < bestDist {
					best = candidate
					bestDist = d
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return best, roundStable(bestDist)
}

// twoOptSwap returns ord with the segment [i..k] reversed.
func twoOptSwap(ord []int, i, k int) []int {
	out := make([]int, len(ord))
	copy(out, ord[:i])
	pos := i
	for j := k; j >= i; j-- {
		out[pos] = ord[j]
		pos++
	}
	copy(out[pos:], ord[k+1:])
	return out
}
