package geofence

import (
	"context"
	"errors"
	"math"
	"testing"

	"attendance.service/internal/areas"
	"attendance.service/internal/geo"
)

type stubZoneStore struct {
	zones []Zone
	err   error
}

func (s *stubZoneStore) ListZones(ctx context.Context) ([]Zone, error) {
	return s.zones, s.err
}

func testRegistry(t *testing.T) *areas.Registry {
	t.Helper()
	reg, err := areas.NewRegistry([]areas.Area{
		{
			Name:   "Oficina Neuquén",
			Center: geo.Coordinate{Lat: -38.9516, Lng: -68.0591},
			Ring: geo.Ring{
				{Lat: -38.9450, Lng: -68.0650},
				{Lat: -38.9450, Lng: -68.0530},
				{Lat: -38.9580, Lng: -68.0530},
				{Lat: -38.9580, Lng: -68.0650},
				{Lat: -38.9450, Lng: -68.0650},
			},
		},
	})
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return reg
}

func emptyRegistry(t *testing.T) *areas.Registry {
	t.Helper()
	reg, err := areas.NewRegistry(nil)
	if err != nil {
		t.Fatalf("building empty registry: %v", err)
	}
	return reg
}

func TestValidatePolygonMatch(t *testing.T) {
	v := NewValidator(testRegistry(t), &stubZoneStore{})

	// Inside the Neuquén ring.
	res := v.Validate(context.Background(), geo.Coordinate{Lat: -38.9516, Lng: -68.0591})

	if !res.Valid {
		t.Fatalf("expected valid result, got %+v", res)
	}
	if !res.ByPolygon {
		t.Fatalf("expected polygon match, got %+v", res)
	}
	if res.AreaName != "Oficina Neuquén" {
		t.Fatalf("expected Oficina Neuquén, got %q", res.AreaName)
	}
}

func TestValidateZoneFallback(t *testing.T) {
	center := geo.Coordinate{Lat: -39.1000, Lng: -67.0000}
	// ~50m east of the zone center at this latitude.
	point := geo.Coordinate{Lat: -39.1000, Lng: -67.0000 + 50.0/(111320.0*math.Cos(-39.1*math.Pi/180))}

	store := &stubZoneStore{zones: []Zone{
		{ID: "z1", Name: "Depósito Central", Center: center, RadiusMeters: 100},
	}}
	v := NewValidator(testRegistry(t), store)

	res := v.Validate(context.Background(), point)

	if !res.Valid {
		t.Fatalf("expected zone fallback to validate, got %+v", res)
	}
	if res.ByPolygon {
		t.Fatalf("expected circular match, got polygon: %+v", res)
	}
	if res.AreaName != "Depósito Central" {
		t.Fatalf("expected Depósito Central, got %q", res.AreaName)
	}
	if res.DistanceMeters <= 0 || res.DistanceMeters > 100 {
		t.Fatalf("distance %v outside expected (0,100]", res.DistanceMeters)
	}
}

func TestValidateOutsideEverything(t *testing.T) {
	store := &stubZoneStore{zones: []Zone{
		{ID: "z1", Name: "Depósito Central", Center: geo.Coordinate{Lat: -39.1, Lng: -67.0}, RadiusMeters: 100},
	}}
	v := NewValidator(testRegistry(t), store)

	// Buenos Aires, nowhere near any configured area.
	res := v.Validate(context.Background(), geo.Coordinate{Lat: -34.6037, Lng: -58.3816})

	if res.Valid {
		t.Fatalf("expected invalid result, got %+v", res)
	}
	if res.DistanceMeters <= 0 {
		t.Fatalf("expected distance to nearest configured area, got %v", res.DistanceMeters)
	}
	// The name only ever identifies a matching area; no match, no name.
	if res.AreaName != "" {
		t.Fatalf("invalid result must not carry an area name, got %q", res.AreaName)
	}
	if res.ByPolygon {
		t.Fatalf("invalid result must not claim a polygon match")
	}
}

func TestValidateFailsClosedWithNoConfiguration(t *testing.T) {
	v := NewValidator(emptyRegistry(t), &stubZoneStore{})

	res := v.Validate(context.Background(), geo.Coordinate{Lat: -38.9516, Lng: -68.0591})

	if res.Valid {
		t.Fatalf("expected fail-closed result, got %+v", res)
	}
	if res.DistanceMeters != 0 {
		t.Fatalf("expected distance 0 with nothing configured, got %v", res.DistanceMeters)
	}
	if res.AreaName != "" {
		t.Fatalf("expected empty area name, got %q", res.AreaName)
	}
}

func TestValidateZoneStoreErrorFailsClosed(t *testing.T) {
	store := &stubZoneStore{err: errors.New("connection refused")}
	v := NewValidator(emptyRegistry(t), store)

	res := v.Validate(context.Background(), geo.Coordinate{Lat: -38.9516, Lng: -68.0591})

	if res.Valid {
		t.Fatalf("expected invalid result when zone store fails, got %+v", res)
	}
}

func TestValidateFirstPolygonWins(t *testing.T) {
	// Two overlapping rings over the same spot; the first registered matches.
	ring := geo.Ring{
		{Lat: -1, Lng: -1},
		{Lat: -1, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: -1},
		{Lat: -1, Lng: -1},
	}
	reg, err := areas.NewRegistry([]areas.Area{
		{Name: "Primera", Center: geo.Coordinate{}, Ring: ring},
		{Name: "Segunda", Center: geo.Coordinate{}, Ring: ring},
	})
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}

	v := NewValidator(reg, &stubZoneStore{})
	res := v.Validate(context.Background(), geo.Coordinate{Lat: 0, Lng: 0})

	if !res.Valid || res.AreaName != "Primera" {
		t.Fatalf("expected first registered polygon to win, got %+v", res)
	}
}
