// Package notify delivers due reminders to the notification service.
// The scheduling core only produces reminder rows; this adapter is
// consumed by the sweep command alone.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/studyflow-app/studyflow/internal/config"
	"github.com/studyflow-app/studyflow/internal/reminder"
)

//go:generate mockgen -source=client.go -destination=../mocks/notify/mock_client.go -package=mock_notify

const maxRetryAttempts = 3

// Dispatcher posts one reminder to the delivery service.
type Dispatcher interface {
	Dispatch(ctx context.Context, r reminder.Reminder) error
}

// HTTPDispatcher implements Dispatcher over the delivery service's
// HTTP API.
type HTTPDispatcher struct {
	httpClient *resty.Client
}

// NewHTTPDispatcher creates a new HTTPDispatcher.
func NewHTTPDispatcher(cfg config.NotifierConfig) *HTTPDispatcher {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Authorization", "Bearer "+cfg.Token)
	client.SetHeader("Content-Type", "application/json")
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	return &HTTPDispatcher{httpClient: client}
}

type notificationRequest struct {
	ReminderID string    `json:"reminder_id"`
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	RemindAt   time.Time `json:"remind_at"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Priority   string    `json:"priority"`
}

// Dispatch posts the reminder, retrying transient failures with
// exponential backoff.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, r reminder.Reminder) error {
	return retry.Do(
		func() error {
			err := d.post(ctx, r)
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(maxRetryAttempts),
		retry.DelayType(retry.BackOffDelay),
	)
}

func (d *HTTPDispatcher) post(ctx context.Context, r reminder.Reminder) error {
	body := notificationRequest{
		ReminderID: r.ID,
		UserID:     r.UserID,
		SessionID:  r.SessionID,
		RemindAt:   r.RemindAt,
		Type:       r.Type,
		Title:      r.Title,
		Body:       r.Body,
		Priority:   string(r.Priority),
	}

	res, err := d.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post("/notifications")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("response error %d: %s", res.StatusCode(), res.String())
	}
	return nil
}

// isRetryableError determines if an error should trigger a retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx and rate limiting.
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}
