package model

import "routeopt/internal/geo"

// Core domain types shared by the API, stores, and the terminal front end.

// Place is one named stop in a city list.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Point converts a Place to the solver's point type.
func (p Place) Point() geo.Point { return geo.Point{Name: p.Name, Lat: p.Lat, Lng: p.Lng} }

// CityList is a named, persisted set of places.
type CityList struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Places []Place `json:"places"`
}

// SolveRequest asks for a tour over a set of places.
type SolveRequest struct {
	Places     []Place `json:"places,omitempty"` // inline; omitted when solving a stored list
	Algorithm  string  `json:"algorithm,omitempty"`
	StartIndex int     `json:"startIndex,omitempty"`
	Open       bool    `json:"open,omitempty"` // true: do not return to the start
	Unit       string  `json:"unit,omitempty"` // "km" (default) or "mi"
	MaxExact   int     `json:"maxExact,omitempty"`
	TwoOpt     bool    `json:"twoOpt,omitempty"` // refine heuristic tours with 2-opt
}

// Leg is one hop of a computed tour.
type Leg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// RouteResult is a computed tour. Algorithm distinguishes exact from
// heuristic output; a heuristic result must never be presented as exact.
type RouteResult struct {
	ID        string   `json:"id,omitempty"`
	ListID    string   `json:"listId,omitempty"`
	Algorithm string   `json:"algorithm"`
	Exact     bool     `json:"exact"`
	Order     []string `json:"order"` // place names in visit order, closing repeat included when closed
	Legs      []Leg    `json:"legs"`
	Total     float64  `json:"total"`
	Unit      string   `json:"unit"`
}
