package api

import (
	"fmt"

	"routeopt/internal/geo"
	"routeopt/internal/model"
	"routeopt/internal/opt"
)

// validateSolveRequest checks request shape before the solver runs, so
// callers get a descriptive 4xx instead of a bare sentinel.
func validateSolveRequest(req *model.SolveRequest, places []model.Place) error {
	switch req.Algorithm {
	case "", opt.AlgoAuto, opt.AlgoNearestNeighbor, opt.AlgoBruteForce:
	default:
		return fmt.Errorf("invalid algorithm: %s (allowed: auto, nearest-neighbor, brute-force)", req.Algorithm)
	}
	switch geo.Unit(req.Unit) {
	case "", geo.Kilometers, geo.Miles:
	default:
		return fmt.Errorf("invalid unit: %s (allowed: km, mi)", req.Unit)
	}
	if len(places) < 2 {
		return fmt.Errorf("need at least 2 places, got %d", len(places))
	}
	if req.StartIndex < 0 || req.StartIndex >= len(places) {
		return fmt.Errorf("startIndex %d out of range [0,%d)", req.StartIndex, len(places))
	}
	if req.MaxExact < 0 || (req.MaxExact > 0 && req.MaxExact < 3) {
		return fmt.Errorf("maxExact must be 0 (default) or >= 3")
	}
	seen := map[string]struct{}{}
	for i, p := range places {
		if p.Name == "" {
			return fmt.Errorf("place %d has an empty name", i)
		}
		if !geo.ValidCoordinate(p.Lat, p.Lng) {
			return fmt.Errorf("place %s: coordinate out of range (%v, %v)", p.Name, p.Lat, p.Lng)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate place name: %s", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
