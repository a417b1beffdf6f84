package legacyhr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"attendance.service/internal/ports/messaging"
)

// Client is the contract for the legacy HR attendance system.
type Client interface {
	RecordAttendance(ctx context.Context, event messaging.AttendanceRecordedEvent) error
}

// HTTPClient talks to the legacy HR API over HTTP.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient builds a client with a conservative request timeout.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// RecordAttendance forwards the attendance event to the legacy HR API.
func (c *HTTPClient) RecordAttendance(ctx context.Context, event messaging.AttendanceRecordedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hr api payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create hr api request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call hr api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("hr api returned non-successful status code: %d", resp.StatusCode)
	}

	log.Ctx(ctx).Info().Str("user_id", event.UserID).Str("type", string(event.Type)).Msg("Attendance forwarded to legacy HR system")
	return nil
}
