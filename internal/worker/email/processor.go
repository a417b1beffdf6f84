package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog/log"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/messaging"
	"attendance.service/internal/ports/repository"
	"attendance.service/internal/worker"
)

// Processor handles check-out summary emails.
type Processor struct {
	emailService core.EmailService
	records      repository.AttendanceRepository
	users        repository.UserRepository
}

// NewProcessor sets up a processor for the email queue. It needs the user
// repository to resolve the recipient address and the attendance repository
// to keep the job status.
func NewProcessor(emailService core.EmailService, records repository.AttendanceRepository, users repository.UserRepository) *Processor {
	return &Processor{
		emailService: emailService,
		records:      records,
		users:        users,
	}
}

// Process tries to send the summary email for one check-out event and tells
// the worker to retry with backoff when it fails.
func (p *Processor) Process(ctx context.Context, msg types.Message) (bool, int32, error) {
	var event messaging.CheckOutEmailEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal email event")
		return false, 0, err // Do not retry on malformed message
	}

	record, err := p.records.FindByID(ctx, event.RecordID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to get record from db for email processing: %w", err)
	}

	if record.EmailStatus == model.StatusEmailCompleted {
		log.Ctx(ctx).Info().Str("record_id", event.RecordID).Msg("Email already sent. Skipping.")
		return false, 0, nil
	}

	user, err := p.users.GetByID(ctx, event.UserID)
	if err != nil {
		return true, 10, fmt.Errorf("failed to look up user for email processing: %w", err)
	}
	if user == nil {
		log.Ctx(ctx).Error().Str("user_id", event.UserID).Msg("User for email event no longer exists")
		return false, 0, fmt.Errorf("user %s not found", event.UserID)
	}

	if err := p.emailService.SendCheckOutSummary(ctx, user.Email, event.HoursWorked); err != nil {
		newCount := record.EmailRetryCount + 1
		if updateErr := p.records.UpdateEmailStatus(ctx, event.RecordID, model.StatusEmailPending, newCount); updateErr != nil {
			log.Ctx(ctx).Error().Err(updateErr).Str("record_id", event.RecordID).Msg("Failed to persist email retry count")
		}

		return true, worker.Backoff(newCount), err
	}

	err = p.records.UpdateEmailStatus(ctx, event.RecordID, model.StatusEmailCompleted, 0)
	return false, 0, err
}
