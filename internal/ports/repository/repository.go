package repository

import (
	"context"
	"errors"

	"attendance.service/internal/core/model"
)

// ErrDuplicateEvent is returned when an append collides with the unique
// (user, date, type) index. The service layer maps it back to the matching
// rejection reason.
var ErrDuplicateEvent = errors.New("attendance event already recorded for this day")

// AttendanceRepository persists attendance records. Append is the only write
// path for the event itself; the status updaters exist for the background
// workers and never touch the event fields.
type AttendanceRepository interface {
	Append(ctx context.Context, rec *model.AttendanceRecord) error
	FindByID(ctx context.Context, id string) (*model.AttendanceRecord, error)
	FindByUserAndDate(ctx context.Context, userID, date string) ([]model.AttendanceRecord, error)
	FindByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error)
	UpdateSyncStatus(ctx context.Context, id string, status model.SyncStatus, retryCount int) error
	UpdateEmailStatus(ctx context.Context, id string, status model.EmailStatus, retryCount int) error
}

// ErrEmailExists is returned when creating a user with a taken email.
var ErrEmailExists = errors.New("email already registered")

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	SetActive(ctx context.Context, id string, active bool) error
}
