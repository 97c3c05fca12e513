package geo

import (
	"math"
)

const (
	kmPerDegLat = 110.574
	kmPerDegLng = 111.320
)

// HaversineKm returns the great-circle distance between two points in kilometers
func HaversineKm(a, b Coordinates) float64 {
	const earthRadiusKm = 6371.0

	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// PointToPolylineKm returns the minimum distance in kilometers from a point
// to a route polyline. Segments are measured on an equirectangular plane
// centered on the query point, which is accurate well past the route-buffer
// distances this system cares about.
func PointToPolylineKm(pt Coordinates, line Polyline) float64 {
	if len(line) == 0 {
		return math.Inf(1)
	}
	if len(line) == 1 {
		return HaversineKm(pt, line[0])
	}

	cosLat := math.Cos(pt.Lat * math.Pi / 180)
	project := func(c Coordinates) (x, y float64) {
		return (c.Lng - pt.Lng) * kmPerDegLng * cosLat, (c.Lat - pt.Lat) * kmPerDegLat
	}

	min := math.Inf(1)
	ax, ay := project(line[0])
	for i := 1; i < len(line); i++ {
		bx, by := project(line[i])
		if d := pointToSegmentKm(ax, ay, bx, by); d < min {
			min = d
		}
		ax, ay = bx, by
	}

	return min
}

// pointToSegmentKm returns the distance from the origin to the segment (a, b)
// in planar km-space.
func pointToSegmentKm(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(ax, ay)
	}

	// Clamp the projection of the origin onto the segment
	t := -(ax*dx + ay*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(ax+t*dx, ay+t*dy)
}
