package opt

import (
	"fmt"

	"routeopt/internal/geo"
)

// Solve validates the instance, routes to the requested solver, and
// returns a normalized result. With AlgoAuto it runs brute force when
// the instance fits the exact bound and nearest neighbor otherwise.
// Callers must not conflate the two: only Exact results carry an
// optimality guarantee.
func Solve(points []geo.Point, o Options) (Result, error) {
	n := len(points)
	if n == 0 {
		return Result{}, ErrEmptyInstance
	}
	if n < 2 {
		return Result{}, ErrTooFewPoints
	}
	if o.Start < 0 || o.Start >= n {
		return Result{}, ErrStartOutOfRange
	}

	unit := o.Unit
	if unit == "" {
		unit = geo.Kilometers
	}
	if !unit.Valid() {
		return Result{}, fmt.Errorf("opt: unknown unit %q", o.Unit)
	}

	seen := make(map[string]struct{}, n)
	for _, p := range points {
		if !geo.ValidCoordinate(p.Lat, p.Lng) {
			return Result{}, fmt.Errorf("%w: %s (%v, %v)", ErrInvalidCoordinate, p.Name, p.Lat, p.Lng)
		}
		if _, dup := seen[p.Name]; dup {
			return Result{}, fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	maxExact := o.MaxExact
	if maxExact == 0 {
		maxExact = DefaultMaxExact
	}
	if maxExact < 3 {
		return Result{}, ErrBadMaxExact
	}

	algo := o.Algorithm
	if algo == "" {
		algo = AlgoAuto
	}
	if algo == AlgoAuto {
		if n >= 3 && n <= maxExact {
			algo = AlgoBruteForce
		} else {
			algo = AlgoNearestNeighbor
		}
	}

	switch algo {
	case AlgoNearestNeighbor:
		order, total, err := NearestNeighbor(points, o.Start, o.Open, unit)
		if err != nil {
			return Result{}, err
		}
		if o.TwoOptIters > 0 && n >= 4 {
			order, total = Improve2Opt(points, order, o.Open, unit, o.TwoOptIters)
		}
		return Result{Algorithm: AlgoNearestNeighbor, Exact: false, Order: order, Open: o.Open, Total: total, Unit: unit}, nil

	case AlgoBruteForce:
		order, total, err := BruteForce(points, o.Open, unit, maxExact, o.OnIncumbent)
		if err != nil {
			return Result{}, err
		}
		return Result{Algorithm: AlgoBruteForce, Exact: true, Order: order, Open: o.Open, Total: total, Unit: unit}, nil

	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, o.Algorithm)
	}
}
