package hrsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
	"attendance.service/internal/worker"
	"attendance.service/internal/worker/legacyhr"
)

// Processor handles jobs from the HR sync queue, which means calling the
// legacy HR API. A circuit breaker keeps us from hammering the legacy system
// when it's having a bad day.
type Processor struct {
	records repository.AttendanceRepository
	hrAPI   legacyhr.Client
	cb      *gobreaker.CircuitBreaker
}

// NewProcessor creates a processor for the HR sync queue with a circuit
// breaker in front of the legacy API.
func NewProcessor(records repository.AttendanceRepository, hrAPI legacyhr.Client) *Processor {
	settings := gobreaker.Settings{
		Name:        "Legacy-HR-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate exceeds 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &Processor{
		records: records,
		hrAPI:   hrAPI,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Process handles one message from the HR sync queue: call the legacy API
// through the circuit breaker, retry with exponential backoff on failure.
func (p *Processor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.AttendanceRecordedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal HR sync event")
		return false, 0, err // Do not retry on malformed message
	}

	record, err := p.records.FindByID(ctx, event.RecordID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to get record from db: %w", err)
	}

	if record.SyncStatus == model.StatusSyncCompleted {
		return false, 0, nil
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.hrAPI.RecordAttendance(ctx, event)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			log.Ctx(ctx).Warn().Msg("Circuit breaker is OPEN; skipping legacy HR API call")
		}
		newCount := record.SyncRetryCount + 1
		if updateErr := p.records.UpdateSyncStatus(ctx, event.RecordID, model.StatusSyncPending, newCount); updateErr != nil {
			log.Ctx(ctx).Error().Err(updateErr).Str("record_id", event.RecordID).Msg("Failed to persist sync retry count")
		}

		return true, worker.Backoff(newCount), err
	}

	err = p.records.UpdateSyncStatus(ctx, event.RecordID, model.StatusSyncCompleted, 0)
	return false, 0, err
}
