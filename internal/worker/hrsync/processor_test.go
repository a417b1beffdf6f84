package hrsync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/messaging"
)

type fakeRecords struct {
	record      *model.AttendanceRecord
	findErr     error
	updateErr   error
	syncUpdates []model.SyncStatus
}

func (f *fakeRecords) Append(ctx context.Context, rec *model.AttendanceRecord) error { return nil }
func (f *fakeRecords) FindByID(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	return f.record, f.findErr
}
func (f *fakeRecords) FindByUserAndDate(ctx context.Context, userID, date string) ([]model.AttendanceRecord, error) {
	return nil, nil
}
func (f *fakeRecords) FindByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	return nil, nil
}
func (f *fakeRecords) UpdateSyncStatus(ctx context.Context, id string, status model.SyncStatus, retryCount int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.syncUpdates = append(f.syncUpdates, status)
	if f.record != nil {
		f.record.SyncStatus = status
		f.record.SyncRetryCount = retryCount
	}
	return nil
}
func (f *fakeRecords) UpdateEmailStatus(ctx context.Context, id string, status model.EmailStatus, retryCount int) error {
	return nil
}

type fakeHRClient struct {
	err   error
	calls int
}

func (c *fakeHRClient) RecordAttendance(ctx context.Context, event messaging.AttendanceRecordedEvent) error {
	c.calls++
	return c.err
}

func message(t *testing.T, event messaging.AttendanceRecordedEvent) types.Message {
	t.Helper()
	body, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return types.Message{Body: aws.String(string(body))}
}

func TestProcessSuccess(t *testing.T) {
	records := &fakeRecords{record: &model.AttendanceRecord{ID: "r1", SyncStatus: model.StatusSyncPending}}
	client := &fakeHRClient{}
	p := NewProcessor(records, client)

	retry, _, err := p.Process(context.Background(), message(t, messaging.AttendanceRecordedEvent{RecordID: "r1", UserID: "u1"}))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if retry {
		t.Fatalf("successful processing must not request a retry")
	}
	if client.calls != 1 {
		t.Fatalf("expected one HR API call, got %d", client.calls)
	}
	if records.record.SyncStatus != model.StatusSyncCompleted {
		t.Fatalf("expected COMPLETED status, got %s", records.record.SyncStatus)
	}
}

func TestProcessSkipsCompletedRecord(t *testing.T) {
	records := &fakeRecords{record: &model.AttendanceRecord{ID: "r1", SyncStatus: model.StatusSyncCompleted}}
	client := &fakeHRClient{}
	p := NewProcessor(records, client)

	retry, _, err := p.Process(context.Background(), message(t, messaging.AttendanceRecordedEvent{RecordID: "r1"}))
	if err != nil || retry {
		t.Fatalf("expected clean skip, got retry=%v err=%v", retry, err)
	}
	if client.calls != 0 {
		t.Fatalf("completed record must not hit the HR API again")
	}
}

func TestProcessRetriesOnAPIFailure(t *testing.T) {
	records := &fakeRecords{record: &model.AttendanceRecord{ID: "r1", SyncStatus: model.StatusSyncPending, SyncRetryCount: 2}}
	client := &fakeHRClient{err: errors.New("hr api is down")}
	p := NewProcessor(records, client)

	retry, delay, err := p.Process(context.Background(), message(t, messaging.AttendanceRecordedEvent{RecordID: "r1"}))
	if err == nil {
		t.Fatalf("expected error from failing HR API")
	}
	if !retry {
		t.Fatalf("transient failure must request a retry")
	}
	if delay <= 0 {
		t.Fatalf("expected positive backoff delay, got %d", delay)
	}
	if records.record.SyncRetryCount != 3 {
		t.Fatalf("expected retry count 3, got %d", records.record.SyncRetryCount)
	}
}

func TestProcessRetriesWhenRetryCountCannotBePersisted(t *testing.T) {
	records := &fakeRecords{
		record:    &model.AttendanceRecord{ID: "r1", SyncStatus: model.StatusSyncPending},
		updateErr: errors.New("db unavailable"),
	}
	client := &fakeHRClient{err: errors.New("hr api is down")}
	p := NewProcessor(records, client)

	// Losing the retry-count write must not swallow the retry itself.
	retry, delay, err := p.Process(context.Background(), message(t, messaging.AttendanceRecordedEvent{RecordID: "r1"}))
	if err == nil || !retry {
		t.Fatalf("expected retryable failure, got retry=%v err=%v", retry, err)
	}
	if delay <= 0 {
		t.Fatalf("expected positive backoff delay, got %d", delay)
	}
}

func TestProcessDropsMalformedMessage(t *testing.T) {
	p := NewProcessor(&fakeRecords{}, &fakeHRClient{})

	retry, _, err := p.Process(context.Background(), types.Message{Body: aws.String("{not json")})
	if err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if retry {
		t.Fatalf("malformed messages must not be retried")
	}
}
