package areas

import (
	"os"
	"path/filepath"
	"testing"

	"attendance.service/internal/geo"
)

func TestNewRegistryRejectsBadRing(t *testing.T) {
	_, err := NewRegistry([]Area{
		{
			Name:   "broken",
			Center: geo.Coordinate{Lat: 0, Lng: 0},
			Ring:   geo.Ring{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 0}},
		},
	})
	if err == nil {
		t.Fatalf("expected error for ring with fewer than 4 points")
	}
}

func TestAllPreservesOrder(t *testing.T) {
	reg := Default()

	want := []string{"Oficina General Roca", "Oficina Neuquén", "Oficina Cipolletti"}
	for i := 0; i < 3; i++ {
		got := reg.All()
		if len(got) != len(want) {
			t.Fatalf("expected %d areas, got %d", len(want), len(got))
		}
		for j, a := range got {
			if a.Name != want[j] {
				t.Fatalf("call %d: area[%d] = %q, want %q", i, j, a.Name, want[j])
			}
		}
	}
}

func TestFindByName(t *testing.T) {
	reg := Default()

	cases := []struct {
		name     string
		query    string
		wantName string
		wantOK   bool
	}{
		{name: "exact", query: "Oficina Neuquén", wantName: "Oficina Neuquén", wantOK: true},
		{name: "substring", query: "cipolletti", wantName: "Oficina Cipolletti", wantOK: true},
		{name: "case insensitive", query: "NEUQUÉN", wantName: "Oficina Neuquén", wantOK: true},
		{name: "ambiguous takes first registered", query: "oficina", wantName: "Oficina General Roca", wantOK: true},
		{name: "no match", query: "bariloche", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := reg.FindByName(tc.query)
			if ok != tc.wantOK {
				t.Fatalf("FindByName(%q) ok = %v, want %v", tc.query, ok, tc.wantOK)
			}
			if ok && got.Name != tc.wantName {
				t.Fatalf("FindByName(%q) = %q, want %q", tc.query, got.Name, tc.wantName)
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "areas.yaml")

	content := `areas:
  - name: "Depósito Sur"
    description: "Depósito de pruebas"
    center: {lat: -39.0, lng: -67.5}
    ring:
      - {lat: -38.9, lng: -67.6}
      - {lat: -38.9, lng: -67.4}
      - {lat: -39.1, lng: -67.4}
      - {lat: -39.1, lng: -67.6}
      - {lat: -38.9, lng: -67.6}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	a, ok := reg.FindByName("depósito")
	if !ok {
		t.Fatalf("expected to find Depósito Sur")
	}
	if a.Center.Lat != -39.0 || a.Center.Lng != -67.5 {
		t.Fatalf("unexpected center: %+v", a.Center)
	}
	if len(a.Ring) != 5 {
		t.Fatalf("expected 5 ring points, got %d", len(a.Ring))
	}
	if !a.Ring.Contains(geo.Coordinate{Lat: -39.0, Lng: -67.5}) {
		t.Fatalf("expected center to be inside the loaded ring")
	}
}

func TestLoadRejectsMalformedRing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "areas.yaml")

	content := `areas:
  - name: "Rota"
    center: {lat: 0, lng: 0}
    ring:
      - {lat: 0, lng: 0}
      - {lat: 1, lng: 1}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected load to fail for malformed ring")
	}
}
