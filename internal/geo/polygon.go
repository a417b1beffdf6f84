package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidRing reports a malformed polygon ring. Rings are validated when
// the area configuration is loaded, so a bad ring prevents startup rather
// than failing per request.
var ErrInvalidRing = errors.New("invalid polygon ring")

// Ring is a closed polygon boundary: an ordered sequence of vertices where
// the first and last coordinate are equal. A valid ring has at least four
// points (a triangle plus the closing vertex).
type Ring []Coordinate

// Validate checks ring closure, minimum size and vertex ranges.
func (r Ring) Validate() error {
	if len(r) < 4 {
		return fmt.Errorf("%w: %d points, need at least 4", ErrInvalidRing, len(r))
	}
	if r[0] != r[len(r)-1] {
		return fmt.Errorf("%w: ring is not closed", ErrInvalidRing)
	}
	for i, c := range r {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: vertex %d: %v", ErrInvalidRing, i, err)
		}
	}
	return nil
}

// Contains reports whether p lies inside the ring, using an even-odd
// ray-casting test over planar (lng, lat) pairs. Treating degrees as planar
// coordinates is only acceptable for small areas (a few km across) where
// curvature is negligible, which holds for work-site polygons.
//
// A point exactly on a boundary edge may test either way; that behavior is
// implementation-defined by the crossing test and deliberately unspecified.
func (r Ring) Contains(p Coordinate) bool {
	n := len(r)
	if n < 4 {
		return false
	}

	// The closing vertex duplicates the first; iterate the open ring.
	n--

	inside := false
	x, y := p.Lng, p.Lat
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := r[i].Lng, r[i].Lat
		xj, yj := r[j].Lng, r[j].Lat
		if ((yi > y) != (yj > y)) && (x < (xj-xi)*(y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
	}
	return inside
}
