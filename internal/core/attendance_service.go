package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"attendance.service/internal/core/model"
	"attendance.service/internal/geo"
	"attendance.service/internal/geofence"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
)

// AttendanceService records entrada/salida events. The caller is expected to
// have run the geofence validation already; this service enforces that the
// result was valid and that the one-entrada/one-salida-per-day rule holds,
// then appends the record and fans out the async events.
type AttendanceService struct {
	records  repository.AttendanceRepository
	producer messaging.QueueProducer
	now      func() time.Time
}

// NewAttendanceService wires the recorder to its repository and event
// producer.
func NewAttendanceService(records repository.AttendanceRepository, p messaging.QueueProducer) *AttendanceService {
	return &AttendanceService{
		records:  records,
		producer: p,
		now:      time.Now,
	}
}

// RecordRequest carries everything needed to record one attendance event.
type RecordRequest struct {
	UserID         string
	Type           model.EventType
	Location       geo.Coordinate
	AccuracyMeters float64
	PhotoRef       string
	Shift          model.Shift
	Validation     geofence.Result
}

// RecordEvent creates one immutable attendance record.
//
// Preconditions, checked in order: the geofence validation must have passed;
// an entrada is rejected when one already exists for the user today; a
// salida requires today's entrada and is rejected when a salida already
// exists. Calendar days are UTC. The read-then-append sequence is backed by
// the repository's unique (user, date, type) constraint, so a concurrent
// duplicate loses the race and gets the same rejection it would have gotten
// from the precondition check.
func (s *AttendanceService) RecordEvent(ctx context.Context, req RecordRequest) (*model.AttendanceRecord, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidEventType
	}
	if !req.Validation.Valid {
		return nil, ErrLocationOutOfRange
	}

	now := s.now().UTC()
	date := now.Format("2006-01-02")

	today, err := s.records.FindByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's records: %w", err)
	}

	var entrada *model.AttendanceRecord
	for i := range today {
		switch today[i].Type {
		case model.EventCheckIn:
			entrada = &today[i]
			if req.Type == model.EventCheckIn {
				return nil, ErrAlreadyCheckedIn
			}
		case model.EventCheckOut:
			if req.Type == model.EventCheckOut {
				return nil, ErrAlreadyCheckedOut
			}
		}
	}
	if req.Type == model.EventCheckOut && entrada == nil {
		return nil, ErrCheckInRequired
	}

	rec := &model.AttendanceRecord{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		Date:           date,
		Type:           req.Type,
		TimeOfDay:      now.Format("15:04:05"),
		Timestamp:      now.UnixMilli(),
		Location:       req.Location,
		AccuracyMeters: req.AccuracyMeters,
		PhotoRef:       req.PhotoRef,
		Shift:          req.Shift,
		AreaName:       req.Validation.AreaName,
		ByPolygon:      req.Validation.ByPolygon,
		SyncStatus:     model.StatusSyncPending,
		EmailStatus:    model.StatusEmailPending,
	}

	if err := s.records.Append(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateEvent) {
			if req.Type == model.EventCheckIn {
				return nil, ErrAlreadyCheckedIn
			}
			return nil, ErrAlreadyCheckedOut
		}
		return nil, fmt.Errorf("failed to append attendance record: %w", err)
	}

	s.publishEvents(ctx, rec, entrada)

	return rec, nil
}

// History returns the user's full attendance history, newest first.
func (s *AttendanceService) History(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	return s.records.FindByUser(ctx, userID)
}

// TodayRecords returns the user's records for the current UTC day.
func (s *AttendanceService) TodayRecords(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	date := s.now().UTC().Format("2006-01-02")
	return s.records.FindByUserAndDate(ctx, userID, date)
}

// publishEvents fans out the async work for a freshly appended record. A
// publish failure never rolls the record back; the workers replay from the
// status columns.
func (s *AttendanceService) publishEvents(ctx context.Context, rec *model.AttendanceRecord, entrada *model.AttendanceRecord) {
	hrEvent := messaging.AttendanceRecordedEvent{
		RecordID:  rec.ID,
		UserID:    rec.UserID,
		Type:      rec.Type,
		Date:      rec.Date,
		Timestamp: rec.Timestamp,
		AreaName:  rec.AreaName,
		ByPolygon: rec.ByPolygon,
	}
	if err := s.producer.PublishHRSync(ctx, hrEvent); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record_id", rec.ID).Msg("Failed to publish HR sync event")
	}

	if rec.Type != model.EventCheckOut || entrada == nil {
		return
	}

	hours := float64(rec.Timestamp-entrada.Timestamp) / float64(time.Hour.Milliseconds())
	emailEvent := messaging.CheckOutEmailEvent{
		RecordID:    rec.ID,
		UserID:      rec.UserID,
		HoursWorked: hours,
		OccurredAt:  time.UnixMilli(rec.Timestamp),
	}
	if err := s.producer.PublishEmail(ctx, emailEvent); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("record_id", rec.ID).Msg("Failed to publish check-out email event")
	}
}
