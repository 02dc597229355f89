package geo

import "math"

// Unit selects the sphere radius used for great-circle distances.
// One unit is used consistently per solve; callers must not mix them.
type Unit string

const (
	// Kilometers is the deployment default (mean Earth radius 6371.0 km).
	Kilometers Unit = "km"
	// Miles uses radius 3958.8 mi.
	Miles Unit = "mi"
)

const (
	earthRadiusKm = 6371.0
	earthRadiusMi = 3958.8
)

// Radius returns the Earth radius for the unit. Unknown units fall back
// to kilometers.
func (u Unit) Radius() float64 {
	if u == Miles {
		return earthRadiusMi
	}
	return earthRadiusKm
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool { return u == Kilometers || u == Miles }

// Point is a named geographic coordinate. Values are immutable once
// created; latitude and longitude are in degrees.
type Point struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// ValidCoordinate reports whether lat/lng are finite and in range
// (lat in [-90,90], lng in [-180,180]).
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Haversine returns the great-circle distance between a and b in the
// given unit. Symmetric and non-negative; ~0 for identical coordinates.
func Haversine(a, b Point, u Unit) float64 {
	return haversine(a.Lat, a.Lng, b.Lat, b.Lng, u.Radius())
}

func haversine(lat1, lng1, lat2, lng2, radius float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	s := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
	return radius * c
}
