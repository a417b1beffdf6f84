// Package areas holds the registry of named work-site polygons a check-in
// may be recorded from. The set is static configuration: it is loaded once
// at startup and validated before the service starts taking requests.
package areas

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"attendance.service/internal/geo"
)

// Area is a named permitted work area bounded by a polygon ring.
type Area struct {
	Name        string         `mapstructure:"name"`
	Description string         `mapstructure:"description"`
	Center      geo.Coordinate `mapstructure:"center"`
	Ring        geo.Ring       `mapstructure:"ring"`
}

// Registry is an ordered, immutable collection of permitted areas.
type Registry struct {
	areas []Area
}

// NewRegistry validates every area's ring and builds a registry. A malformed
// ring is a configuration error and aborts startup.
func NewRegistry(list []Area) (*Registry, error) {
	for _, a := range list {
		if err := a.Ring.Validate(); err != nil {
			return nil, fmt.Errorf("area %q: %w", a.Name, err)
		}
		if err := a.Center.Validate(); err != nil {
			return nil, fmt.Errorf("area %q: center: %w", a.Name, err)
		}
	}
	areas := make([]Area, len(list))
	copy(areas, list)
	return &Registry{areas: areas}, nil
}

// All returns the configured areas in registration order. The returned slice
// is a copy; callers may not mutate the registry through it.
func (r *Registry) All() []Area {
	out := make([]Area, len(r.areas))
	copy(out, r.areas)
	return out
}

// FindByName returns the first area whose name contains the given substring,
// case-insensitively, in registration order. When several areas match, the
// first registered one wins; the match is ambiguous by design of the
// original configuration and is not disambiguated here.
func (r *Registry) FindByName(substr string) (Area, bool) {
	needle := strings.ToLower(substr)
	for _, a := range r.areas {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			return a, true
		}
	}
	return Area{}, false
}

// Load reads a registry from a YAML file with a top-level "areas" list.
func Load(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading areas config %s: %w", path, err)
	}

	var list []Area
	if err := v.UnmarshalKey("areas", &list); err != nil {
		return nil, fmt.Errorf("parsing areas config %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("areas config %s defines no areas", path)
	}
	return NewRegistry(list)
}
