package opt

import "routeopt/internal/geo"

// NearestNeighbor builds a tour greedily: from the current point, always
// hop to the closest unvisited point, breaking exact ties by lowest
// index. O(n²) distance evaluations; deterministic for a fixed input
// order. The result is a heuristic, not a global optimum.
//
// The returned order has length n, without a closing repeat; when open
// is false the returned total includes the return leg to start.
func NearestNeighbor(points []geo.Point, start int, open bool, u geo.Unit) ([]int, float64, error) {
	n := len(points)
	if n == 0 {
		return nil, 0, ErrEmptyInstance
	}
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	order := make([]int, 1, n)
	order[0] = start
	visited[start] = true
	total := 0.0

	for len(order) < n {
		last := order[len(order)-1]
		nearest := -1
		minDist := 0.0
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := geo.Haversine(points[last], points[i], u)
			// Strict < keeps the lowest index on exact ties.
			if nearest < 0 || d < minDist {
				nearest = i
				minDist = d
			}
		}
		if nearest < 0 {
			// Unreachable for n >= 1; invariant guard only.
			return nil, 0, ErrNoReachablePoint
		}
		visited[nearest] = true
		order = append(order, nearest)
		total += minDist
	}

	if !open {
		total += geo.Haversine(points[order[n-1]], points[start], u)
	}
	return order, roundStable(total), nil
}
