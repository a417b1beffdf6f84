package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"attendance.service/internal/core/model"
)

// PostgresAttendanceRepository is the concrete AttendanceRepository for a
// PostgreSQL database.
type PostgresAttendanceRepository struct {
	DB *sql.DB
}

// NewAttendanceRepository creates a new Postgres-backed repository.
func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &PostgresAttendanceRepository{DB: db}
}

const recordColumns = `id, user_id, date, type, time_of_day, ts, latitude, longitude,
       accuracy_meters, photo_ref, shift, area_name, by_polygon,
       sync_status, sync_retry_count, email_status, email_retry_count`

// Append inserts a record. The unique index on (user_id, date, type) is the
// atomic guard against two concurrent writers recording the same event; a
// collision comes back as ErrDuplicateEvent.
func (r *PostgresAttendanceRepository) Append(ctx context.Context, rec *model.AttendanceRecord) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.userId", rec.UserID))

	query := `INSERT INTO attendance_records
              (id, user_id, date, type, time_of_day, ts, latitude, longitude,
               accuracy_meters, photo_ref, shift, area_name, by_polygon,
               sync_status, sync_retry_count, email_status, email_retry_count)
              VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,0,$15,0)`

	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Date, rec.Type, rec.TimeOfDay, rec.Timestamp,
		rec.Location.Lat, rec.Location.Lng, rec.AccuracyMeters, rec.PhotoRef,
		nullable(string(rec.Shift)), nullable(rec.AreaName), rec.ByPolygon,
		rec.SyncStatus, rec.EmailStatus,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEvent
	}
	return err
}

// FindByID fetches a complete record by its id.
func (r *PostgresAttendanceRepository) FindByID(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE id = $1`
	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindByUserAndDate returns a user's records for one calendar day, oldest
// first.
func (r *PostgresAttendanceRepository) FindByUserAndDate(ctx context.Context, userID, date string) ([]model.AttendanceRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.userId", userID))

	query := `SELECT ` + recordColumns + `
              FROM attendance_records
              WHERE user_id = $1 AND date = $2
              ORDER BY ts ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// FindByUser returns a user's full history, newest first.
func (r *PostgresAttendanceRepository) FindByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.userId", userID))

	query := `SELECT ` + recordColumns + `
              FROM attendance_records
              WHERE user_id = $1
              ORDER BY ts DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// UpdateSyncStatus updates the status and retry count of the HR sync job.
func (r *PostgresAttendanceRepository) UpdateSyncStatus(ctx context.Context, id string, status model.SyncStatus, retryCount int) error {
	query := `UPDATE attendance_records SET sync_status = $1, sync_retry_count = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, retryCount, id)
	return err
}

// UpdateEmailStatus updates the status and retry count of the email job.
func (r *PostgresAttendanceRepository) UpdateEmailStatus(ctx context.Context, id string, status model.EmailStatus, retryCount int) error {
	query := `UPDATE attendance_records SET email_status = $1, email_retry_count = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, retryCount, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*model.AttendanceRecord, error) {
	rec := &model.AttendanceRecord{}
	var shift, areaName sql.NullString

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.Type, &rec.TimeOfDay, &rec.Timestamp,
		&rec.Location.Lat, &rec.Location.Lng, &rec.AccuracyMeters, &rec.PhotoRef,
		&shift, &areaName, &rec.ByPolygon,
		&rec.SyncStatus, &rec.SyncRetryCount, &rec.EmailStatus, &rec.EmailRetryCount,
	)
	if err != nil {
		return nil, err
	}
	rec.Shift = model.Shift(shift.String)
	rec.AreaName = areaName.String
	return rec, nil
}

func collectRecords(rows *sql.Rows) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
