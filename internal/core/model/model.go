package model

import (
	"time"

	"attendance.service/internal/geo"
)

// EventType says whether a record is a clock-in or a clock-out.
type EventType string

const (
	EventCheckIn  EventType = "entrada"
	EventCheckOut EventType = "salida"
)

// Valid reports whether t is one of the two known event types.
func (t EventType) Valid() bool {
	return t == EventCheckIn || t == EventCheckOut
}

// Shift is the optional work shift a record belongs to.
type Shift string

const (
	ShiftMorning   Shift = "mañana"
	ShiftAfternoon Shift = "tarde"
	ShiftNight     Shift = "noche"
)

// SyncStatus tracks forwarding of a record to the legacy HR system.
type SyncStatus string

const (
	StatusSyncPending    SyncStatus = "PENDING"
	StatusSyncProcessing SyncStatus = "PROCESSING"
	StatusSyncCompleted  SyncStatus = "COMPLETED"
	StatusSyncFailed     SyncStatus = "FAILED"
)

// EmailStatus tracks the check-out summary email for a record.
type EmailStatus string

const (
	StatusEmailPending   EmailStatus = "PENDING"
	StatusEmailCompleted EmailStatus = "COMPLETED"
	StatusEmailFailed    EmailStatus = "FAILED"
)

// AttendanceRecord is one immutable clock-in or clock-out event. A user gets
// at most one entrada and one salida per calendar day; records are appended
// once and never updated through the recording interface. The sync and email
// status fields are background-worker bookkeeping, not part of the event
// itself.
type AttendanceRecord struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Date           string         `json:"date"` // YYYY-MM-DD, UTC
	Type           EventType      `json:"type"`
	TimeOfDay      string         `json:"timeOfDay"` // HH:MM:SS, UTC
	Timestamp      int64          `json:"timestamp"` // epoch milliseconds
	Location       geo.Coordinate `json:"location"`
	AccuracyMeters float64        `json:"accuracyMeters"`
	PhotoRef       string         `json:"photoRef"`
	Shift          Shift          `json:"shift,omitempty"`
	AreaName       string         `json:"areaName,omitempty"`
	ByPolygon      bool           `json:"validatedByPolygon"`

	SyncStatus      SyncStatus  `json:"syncStatus"`
	SyncRetryCount  int         `json:"syncRetryCount"`
	EmailStatus     EmailStatus `json:"emailStatus"`
	EmailRetryCount int         `json:"emailRetryCount"`
}

// Role is the permission level of a user.
type Role string

const (
	RoleEmployee   Role = "empleado"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

// User owns its attendance records; no other user can see or touch them.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	CredentialHash string    `json:"-"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	DNI            string    `json:"dni"`
	Role           Role      `json:"role"`
	Active         bool      `json:"active"`
	RegisteredAt   time.Time `json:"registeredAt"`
}
