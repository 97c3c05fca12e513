package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	abuja = Coordinates{Lat: 9.0765, Lng: 7.3986}
	jos   = Coordinates{Lat: 9.8965, Lng: 8.8583}
	lagos = Coordinates{Lat: 6.5244, Lng: 3.3792}
)

func TestHaversineKm(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   Coordinates
		wantKm float64
		delta  float64
	}{
		{name: "zero distance", a: abuja, b: abuja, wantKm: 0, delta: 0.001},
		{name: "Abuja to Jos", a: abuja, b: jos, wantKm: 184, delta: 5},
		{name: "Abuja to Lagos", a: abuja, b: lagos, wantKm: 523, delta: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HaversineKm(tc.a, tc.b)
			assert.InDelta(t, tc.wantKm, got, tc.delta)

			// symmetric
			assert.InDelta(t, got, HaversineKm(tc.b, tc.a), 0.001)
		})
	}
}

func TestPointToPolylineKm(t *testing.T) {
	route := Polyline{abuja, jos}

	t.Run("endpoint is on the line", func(t *testing.T) {
		assert.InDelta(t, 0, PointToPolylineKm(abuja, route), 0.001)
	})

	t.Run("vertex of a multi-segment line", func(t *testing.T) {
		mid := Coordinates{Lat: 9.5, Lng: 8.1}
		line := Polyline{abuja, mid, jos}
		assert.InDelta(t, 0, PointToPolylineKm(mid, line), 0.001)
	})

	t.Run("point near the segment interior", func(t *testing.T) {
		// Halfway between the endpoints, nudged 0.1 degrees north
		near := Coordinates{Lat: (abuja.Lat+jos.Lat)/2 + 0.1, Lng: (abuja.Lng + jos.Lng) / 2}
		d := PointToPolylineKm(near, route)
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, 15.0)
	})

	t.Run("distant point", func(t *testing.T) {
		d := PointToPolylineKm(lagos, route)
		assert.Greater(t, d, 100.0)
	})

	t.Run("projection clamps past the endpoints", func(t *testing.T) {
		// A point beyond Jos must measure to Jos, not to the infinite line
		beyond := Coordinates{Lat: 10.7, Lng: 10.3}
		assert.InDelta(t, HaversineKm(beyond, jos), PointToPolylineKm(beyond, route), 2.0)
	})

	t.Run("empty line", func(t *testing.T) {
		assert.True(t, math.IsInf(PointToPolylineKm(abuja, Polyline{}), 1))
	})

	t.Run("single point line", func(t *testing.T) {
		assert.InDelta(t, HaversineKm(abuja, jos), PointToPolylineKm(abuja, Polyline{jos}), 0.001)
	})
}
