package geofence

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"attendance.service/internal/areas"
	"attendance.service/internal/geo"
)

// polygonArea adapts a registry area to the PermittedArea capability.
type polygonArea struct {
	area areas.Area
}

func (a polygonArea) Name() string                   { return a.area.Name }
func (a polygonArea) Contains(p geo.Coordinate) bool { return a.area.Ring.Contains(p) }
func (a polygonArea) DistanceToCenter(p geo.Coordinate) float64 {
	return geo.Distance(p, a.area.Center)
}

// circularZone adapts a stored zone to the PermittedArea capability.
type circularZone struct {
	zone Zone
}

func (z circularZone) Name() string { return z.zone.Name }
func (z circularZone) Contains(p geo.Coordinate) bool {
	return geo.Distance(p, z.zone.Center) <= z.zone.RadiusMeters
}
func (z circularZone) DistanceToCenter(p geo.Coordinate) float64 {
	return geo.Distance(p, z.zone.Center)
}

// Validator checks device locations against the polygon registry first and
// the circular zone store second.
type Validator struct {
	registry *areas.Registry
	zones    ZoneStore
}

// NewValidator wires the validator to its area sources.
func NewValidator(registry *areas.Registry, zones ZoneStore) *Validator {
	return &Validator{registry: registry, zones: zones}
}

// Validate reports whether p lies in any permitted area.
//
// Polygons are checked in registration order and the first containing area
// wins; overlapping polygons are not disambiguated beyond that. If no
// polygon contains the point, the circular zones are checked in storage
// order. If nothing matches, the result carries the distance to the nearest
// configured center so the caller can tell the user how far off they are;
// the area name stays empty, it only ever names a matching area. With no
// areas and no zones configured at all, validation fails closed with
// distance 0.
func (v *Validator) Validate(ctx context.Context, p geo.Coordinate) Result {
	ctx, span := otel.Tracer("geofence").Start(ctx, "validate_location")
	defer span.End()

	candidates := v.permittedAreas(ctx)
	if len(candidates) == 0 {
		log.Ctx(ctx).Warn().Msg("No permitted areas or zones configured; failing validation closed")
		span.SetAttributes(attribute.Bool("app.geofence.valid", false))
		return Result{Valid: false, DistanceMeters: 0}
	}

	nearest := -1.0
	for _, area := range candidates {
		d := area.DistanceToCenter(p)
		if nearest < 0 || d < nearest {
			nearest = d
		}

		if !area.Contains(p) {
			continue
		}

		_, byPolygon := area.(polygonArea)
		span.SetAttributes(
			attribute.Bool("app.geofence.valid", true),
			attribute.String("app.geofence.area", area.Name()),
			attribute.Bool("app.geofence.by_polygon", byPolygon),
		)
		return Result{
			Valid:          true,
			DistanceMeters: d,
			AreaName:       area.Name(),
			ByPolygon:      byPolygon,
		}
	}

	span.SetAttributes(attribute.Bool("app.geofence.valid", false))
	return Result{Valid: false, DistanceMeters: nearest}
}

// permittedAreas assembles the ordered candidate list: polygons first, then
// circular zones. A zone store error fails closed: the zones are simply
// absent from the candidates for this call.
func (v *Validator) permittedAreas(ctx context.Context) []PermittedArea {
	var out []PermittedArea
	for _, a := range v.registry.All() {
		out = append(out, polygonArea{area: a})
	}

	if v.zones == nil {
		return out
	}

	zones, err := v.zones.ListZones(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to list circular zones; validating against polygons only")
		return out
	}
	for _, z := range zones {
		out = append(out, circularZone{zone: z})
	}
	return out
}
