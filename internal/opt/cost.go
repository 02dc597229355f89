package opt

import (
	"math"

	"routeopt/internal/geo"
)

// roundScale stabilizes summed costs at 1e-9 so repeated solves and
// cross-platform runs report identical totals.
const roundScale = 1e9

func roundStable(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourCost sums the great-circle distance of consecutive legs along
// order. When closed is true the return leg order[last]→order[0] is
// added. order must not carry a closing repeat; indices must be within
// [0, len(points)).
func TourCost(points []geo.Point, order []int, closed bool, u geo.Unit) (float64, error) {
	if len(points) == 0 {
		return 0, ErrEmptyInstance
	}
	n := len(points)
	total := 0.0
	for i, idx := range order {
		if idx < 0 || idx >= n {
			return 0, ErrStartOutOfRange
		}
		if i > 0 {
			total += geo.Haversine(points[order[i-1]], points[idx], u)
		}
	}
	if closed && len(order) > 1 {
		total += geo.Haversine(points[order[len(order)-1]], points[order[0]], u)
	}
	return roundStable(total), nil
}

// matrixCost is the hot-path variant over a precomputed distance matrix.
func matrixCost(m [][]float64, order []int, closed bool) float64 {
	total := 0.0
	for i := 0; i < len(order)-1; i++ {
		total += m[order[i]][order[i+1]]
	}
	if closed && len(order) > 1 {
		total += m[order[len(order)-1]][order[0]]
	}
	return total
}
