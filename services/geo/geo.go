package geo

import (
	"context"
	"errors"
)

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a geocoded place name
type Place struct {
	Name   string      `json:"name"`
	Coords Coordinates `json:"coords"`
}

// Polyline is an ordered route geometry
type Polyline []Coordinates

// ErrNotFound is returned when a place cannot be geocoded or no route exists
var ErrNotFound = errors.New("geo: not found")

//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks github.com/movever/movever/services/geo Resolver

// Resolver resolves free-text place names to coordinates and computes travel
// routes between coordinate pairs. Implementations must be time-bounded via
// the supplied context; callers treat failures as a degraded candidate, not a
// fatal error.
type Resolver interface {
	Geocode(ctx context.Context, address string) (*Place, error)
	Route(ctx context.Context, start, end Coordinates) (Polyline, error)
}
