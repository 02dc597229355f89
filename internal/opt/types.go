package opt

import (
	"errors"

	"routeopt/internal/geo"
)

// Algorithm names accepted by Solve.
const (
	AlgoAuto            = "auto"
	AlgoNearestNeighbor = "nearest-neighbor"
	AlgoBruteForce      = "brute-force"
)

// DefaultMaxExact bounds the brute-force solver. n! permutations are
// enumerated, so the ceiling is a safety limit, not a tuning knob.
const DefaultMaxExact = 10

// Sentinel errors returned by the solvers.
var (
	// ErrEmptyInstance indicates an instance with no points.
	ErrEmptyInstance = errors.New("opt: empty instance")

	// ErrTooFewPoints indicates fewer than 2 points were supplied.
	ErrTooFewPoints = errors.New("opt: instance needs at least 2 points")

	// ErrStartOutOfRange indicates a start index outside [0, n).
	ErrStartOutOfRange = errors.New("opt: start index out of range")

	// ErrNoReachablePoint is a defensive invariant check in the greedy
	// builder; it cannot fire for a well-formed instance.
	ErrNoReachablePoint = errors.New("opt: no reachable unvisited point")

	// ErrSizeOutOfRange indicates the brute-force solver was invoked
	// outside its supported size bound.
	ErrSizeOutOfRange = errors.New("opt: instance size out of range for brute force")

	// ErrInvalidCoordinate indicates a latitude/longitude outside valid range.
	ErrInvalidCoordinate = errors.New("opt: invalid coordinate")

	// ErrDuplicateName indicates two points share a name.
	ErrDuplicateName = errors.New("opt: duplicate point name")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("opt: unknown algorithm")

	// ErrBadMaxExact indicates a brute-force ceiling below 3.
	ErrBadMaxExact = errors.New("opt: maxExact must be at least 3")
)

// Options configures a Solve call.
type Options struct {
	Algorithm   string   // auto, nearest-neighbor, brute-force; empty means auto
	Start       int      // index of the starting point
	Open        bool     // true: do not return to the start
	Unit        geo.Unit // kilometers when empty
	MaxExact    int      // brute-force ceiling; 0 means DefaultMaxExact
	TwoOptIters int      // 2-opt passes applied to heuristic tours; 0 disables

	// OnIncumbent, if set, is called by the brute-force solver each time
	// a strictly better permutation is found. Observation only; it has no
	// effect on the result.
	OnIncumbent func(Incumbent)
}

// Incumbent is a best-so-far tour reported during brute-force enumeration.
type Incumbent struct {
	Order []int   // visit order, closing repeat included for closed tours
	Total float64 // tour cost at this incumbent
	Perm  int64   // 0-based position in generation order
}

// Result is a computed tour over the input points. Order has length n
// without a closing repeat; Open records whether the total includes the
// return leg.
type Result struct {
	Algorithm string
	Exact     bool // true only for complete brute-force enumeration
	Order     []int
	Open      bool
	Total     float64
	Unit      geo.Unit
}

// Names resolves the visit order to point names, appending the closing
// repeat for closed tours.
func (r Result) Names(points []geo.Point) []string {
	out := make([]string, 0, len(r.Order)+1)
	for _, idx := range r.Order {
		out = append(out, points[idx].Name)
	}
	if !r.Open && len(r.Order) > 1 {
		out = append(out, points[r.Order[0]].Name)
	}
	return out
}

// Leg is one hop of a tour, resolved to point names.
type Leg struct {
	From     string
	To       string
	Distance float64
}

// Legs expands a visit order into per-leg name/distance triples.
// When closed is true a final return leg to order[0] is appended.
func Legs(points []geo.Point, order []int, closed bool, u geo.Unit) []Leg {
	if len(order) == 0 {
		return nil
	}
	out := make([]Leg, 0, len(order))
	for i := 0; i < len(order)-1; i++ {
		a, b := points[order[i]], points[order[i+1]]
		out = append(out, Leg{From: a.Name, To: b.Name, Distance: roundStable(geo.Haversine(a, b, u))})
	}
	if closed && len(order) > 1 {
		a, b := points[order[len(order)-1]], points[order[0]]
		out = append(out, Leg{From: a.Name, To: b.Name, Distance: roundStable(geo.Haversine(a, b, u))})
	}
	return out
}
