package repository

import (
	"context"
	"database/sql"

	"attendance.service/internal/geofence"
)

// PostgresZoneStore reads the legacy circular zones. The table predates the
// polygon registry and stays in place until every site has a polygon.
type PostgresZoneStore struct {
	DB *sql.DB
}

// NewZoneStore creates a new Postgres-backed zone store.
func NewZoneStore(db *sql.DB) *PostgresZoneStore {
	return &PostgresZoneStore{DB: db}
}

// ListZones returns all configured circular zones in insertion order.
func (s *PostgresZoneStore) ListZones(ctx context.Context) ([]geofence.Zone, error) {
	query := `SELECT id, name, latitude, longitude, radius_meters
              FROM zones ORDER BY created_at ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []geofence.Zone
	for rows.Next() {
		var z geofence.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Center.Lat, &z.Center.Lng, &z.RadiusMeters); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}
