package messaging

import (
	"time"

	"attendance.service/internal/core/model"
)

// AttendanceRecordedEvent is the JSON payload sent to the HR sync queue for
// every recorded entrada/salida.
type AttendanceRecordedEvent struct {
	RecordID  string          `json:"recordId"`
	UserID    string          `json:"userId"`
	Type      model.EventType `json:"type"`
	Date      string          `json:"date"`
	Timestamp int64           `json:"timestamp"`
	AreaName  string          `json:"areaName,omitempty"`
	ByPolygon bool            `json:"byPolygon"`
}

// CheckOutEmailEvent is the JSON payload sent to the email queue after a
// salida, carrying the hours worked that day.
type CheckOutEmailEvent struct {
	RecordID    string    `json:"recordId"`
	UserID      string    `json:"userId"`
	HoursWorked float64   `json:"hoursWorked"`
	OccurredAt  time.Time `json:"occurredAt"`
}
