package geo

import (
	"math"
	"testing"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	p := Coordinate{Lat: -38.9516, Lng: -68.0591}
	if d := Distance(p, p); d != 0 {
		t.Fatalf("expected 0 for identical points, got %v", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Coordinate{Lat: -38.9516, Lng: -68.0591}
	b := Coordinate{Lat: -39.0333, Lng: -67.5833}
	if da, db := Distance(a, b), Distance(b, a); da != db {
		t.Fatalf("distance not symmetric: %v vs %v", da, db)
	}
}

func TestDistanceKnownValues(t *testing.T) {
	cases := []struct {
		name string
		a, b Coordinate
		want float64 // meters
		tol  float64
	}{
		{
			// One degree of latitude along a meridian.
			name: "one degree latitude",
			a:    Coordinate{Lat: 0, Lng: 0},
			b:    Coordinate{Lat: 1, Lng: 0},
			want: 111195,
			tol:  50,
		},
		{
			// Neuquén office to Cipolletti office, roughly 6.3 km.
			name: "neuquen to cipolletti",
			a:    Coordinate{Lat: -38.9516, Lng: -68.0591},
			b:    Coordinate{Lat: -38.9337, Lng: -67.9894},
			want: 6350,
			tol:  150,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.b)
			if math.Abs(got-tc.want) > tc.tol {
				t.Fatalf("Distance() = %v, want %v ± %v", got, tc.want, tc.tol)
			}
		})
	}
}

func TestCoordinateValidate(t *testing.T) {
	cases := []struct {
		name    string
		c       Coordinate
		wantErr bool
	}{
		{name: "valid", c: Coordinate{Lat: -39.0333, Lng: -67.5833}},
		{name: "lat too high", c: Coordinate{Lat: 90.1, Lng: 0}, wantErr: true},
		{name: "lat too low", c: Coordinate{Lat: -90.1, Lng: 0}, wantErr: true},
		{name: "lng too high", c: Coordinate{Lat: 0, Lng: 180.1}, wantErr: true},
		{name: "lng too low", c: Coordinate{Lat: 0, Lng: -180.1}, wantErr: true},
		{name: "boundary ok", c: Coordinate{Lat: 90, Lng: -180}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
