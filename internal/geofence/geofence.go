// Package geofence decides whether a device location is inside one of the
// organization's permitted work areas. Polygon areas are checked first; the
// circular zones kept in storage are a fallback left over from the radius
// based validation the polygons replaced.
package geofence

import (
	"context"

	"attendance.service/internal/geo"
)

// PermittedArea is the capability both kinds of permitted region expose.
// Polygon areas and circular zones are two variants of the same thing, so
// the validator walks them through one interface instead of two code paths.
type PermittedArea interface {
	Name() string
	Contains(p geo.Coordinate) bool
	DistanceToCenter(p geo.Coordinate) float64
}

// Zone is a circular permitted region: anything within RadiusMeters of the
// center validates. RadiusMeters must be positive.
type Zone struct {
	ID           string
	Name         string
	Center       geo.Coordinate
	RadiusMeters float64
}

// ZoneStore lists the configured circular zones in storage order. The list
// may be empty.
type ZoneStore interface {
	ListZones(ctx context.Context) ([]Zone, error)
}

// Result is the outcome of a single validation. It is produced fresh per
// call and never persisted on its own.
type Result struct {
	Valid          bool    `json:"valid"`
	DistanceMeters float64 `json:"distanceMeters"`
	AreaName       string  `json:"areaName,omitempty"`
	ByPolygon      bool    `json:"byPolygon"`
}
