// Package cities provides the built-in city table and loading of user
// tables from YAML files.
package cities

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	yaml "gopkg.in/yaml.v3"

	"routeopt/internal/geo"
	"routeopt/internal/model"
)

//go:embed cities.yaml
var defaultTable []byte

var (
	defOnce   sync.Once
	defPlaces []model.Place
	defErr    error
)

// Default returns the built-in table of 20 US cities. The returned
// slice is shared; callers must not mutate it.
func Default() ([]model.Place, error) {
	defOnce.Do(func() {
		defPlaces, defErr = parse(defaultTable)
	})
	return defPlaces, defErr
}

// LoadFile reads a city table from a YAML file with the same shape as
// the embedded table.
func LoadFile(path string) ([]model.Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) ([]model.Place, error) {
	var places []model.Place
	if err := yaml.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("cities: parse table: %w", err)
	}
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		if p.Name == "" {
			return nil, fmt.Errorf("cities: entry with empty name")
		}
		if !geo.ValidCoordinate(p.Lat, p.Lng) {
			return nil, fmt.Errorf("cities: %s: coordinate out of range (%v, %v)", p.Name, p.Lat, p.Lng)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("cities: duplicate entry %s", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return places, nil
}
