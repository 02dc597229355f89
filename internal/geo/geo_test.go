package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	newYork    = Point{Name: "New York, NY", Lat: 40.7128, Lng: -74.0060}
	losAngeles = Point{Name: "Los Angeles, CA", Lat: 34.0522, Lng: -118.2437}
)

func TestHaversineReference(t *testing.T) {
	// Known great-circle distance for NY–LA against both radii.
	assert.InDelta(t, 3935.746254609723, Haversine(newYork, losAngeles, Kilometers), 1e-6)
	assert.InDelta(t, 2445.586606929677, Haversine(newYork, losAngeles, Miles), 1e-6)
}

func TestHaversineSymmetric(t *testing.T) {
	assert.Equal(t, Haversine(newYork, losAngeles, Kilometers), Haversine(losAngeles, newYork, Kilometers))
}

func TestHaversineZero(t *testing.T) {
	assert.InDelta(t, 0, Haversine(newYork, newYork, Kilometers), 1e-9)
}

func TestHaversineAntipodal(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 180}
	// Half the circumference of the sphere.
	assert.InDelta(t, math.Pi*6371.0, Haversine(a, b, Kilometers), 1e-6)
}

func TestUnitRadius(t *testing.T) {
	assert.Equal(t, 6371.0, Kilometers.Radius())
	assert.Equal(t, 3958.8, Miles.Radius())
	// Unknown units fall back to kilometers.
	assert.Equal(t, 6371.0, Unit("furlong").Radius())

	assert.True(t, Kilometers.Valid())
	assert.True(t, Miles.Valid())
	assert.False(t, Unit("furlong").Valid())
	assert.False(t, Unit("").Valid())
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(90, 180))
	assert.True(t, ValidCoordinate(-90, -180))
	assert.False(t, ValidCoordinate(90.0001, 0))
	assert.False(t, ValidCoordinate(0, -180.0001))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}

func TestMatrix(t *testing.T) {
	points := []Point{
		newYork,
		losAngeles,
		{Name: "Chicago, IL", Lat: 41.8781, Lng: -87.6298},
	}
	m := Matrix(points, Kilometers)
	require.Len(t, m, 3)
	for i := range m {
		assert.Equal(t, 0.0, m[i][i])
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i])
			if i != j {
				assert.InDelta(t, Haversine(points[i], points[j], Kilometers), m[i][j], 1e-12)
			}
		}
	}
}

func TestMatrixConcurrentMatchesSerial(t *testing.T) {
	points := make([]Point, 80)
	for i := range points {
		points[i] = Point{
			Lat: -60 + float64(i)*1.3,
			Lng: -170 + float64(i)*4.1,
		}
	}
	want := Matrix(points, Miles)
	got := MatrixConcurrent(points, Miles, 4)
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}
