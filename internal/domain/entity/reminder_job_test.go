// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestReminderJob_Lifecycle(t *testing.T) {
	job := NewReminderJob(
		uuid.New(),
		"user@example.com",
		"User",
		"Bills due soon",
		[]uuid.UUID{uuid.New()},
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		map[string]interface{}{"count": 1},
	)

	if job.Status != ReminderStatusPending {
		t.Errorf("new job status = %s, want pending", job.Status)
	}
	if job.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", job.MaxAttempts)
	}
	if !job.CanRetry() {
		t.Error("pending job with no attempts must be retryable")
	}

	job.MarkProcessing()
	if job.Status != ReminderStatusProcessing {
		t.Errorf("status = %s, want processing", job.Status)
	}

	job.MarkSent("re_abc123")
	if job.Status != ReminderStatusSent {
		t.Errorf("status = %s, want sent", job.Status)
	}
	if job.ResendID != "re_abc123" {
		t.Errorf("ResendID = %s, want re_abc123", job.ResendID)
	}
	if job.ProcessedAt == nil {
		t.Error("expected ProcessedAt to be set")
	}
}

func TestReminderJob_RetryBackoff(t *testing.T) {
	job := NewReminderJob(uuid.New(), "user@example.com", "User", "Bills due soon", nil,
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), nil)

	sendErr := errors.New("rate limited")

	job.MarkFailed(sendErr, false)
	if job.Status != ReminderStatusPending {
		t.Errorf("status after first failure = %s, want pending", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", job.Attempts)
	}
	if job.LastError != "rate limited" {
		t.Errorf("LastError = %q, want %q", job.LastError, "rate limited")
	}
	if !job.CanRetry() {
		t.Error("expected job to be retryable after first failure")
	}

	job.MarkFailed(sendErr, false)
	if job.Status != ReminderStatusPending || job.Attempts != 2 {
		t.Errorf("after second failure: status=%s attempts=%d, want pending/2", job.Status, job.Attempts)
	}

	job.MarkFailed(sendErr, false)
	if job.Status != ReminderStatusFailed {
		t.Errorf("status after exhausting attempts = %s, want failed", job.Status)
	}
	if job.CanRetry() {
		t.Error("failed job must not be retryable")
	}
	if job.ProcessedAt == nil {
		t.Error("expected ProcessedAt to be set on terminal failure")
	}
}

func TestReminderJob_PermanentFailure(t *testing.T) {
	job := NewReminderJob(uuid.New(), "user@example.com", "User", "Bills due soon", nil,
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), nil)

	job.MarkFailed(errors.New("invalid recipient"), true)
	if job.Status != ReminderStatusFailed {
		t.Errorf("status = %s, want failed", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", job.Attempts)
	}
}

func TestReminderDedupKey(t *testing.T) {
	userID := uuid.New()
	due := time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC)

	key := ReminderDedupKey(userID, due)
	want := userID.String() + ":2025-06-15"
	if key != want {
		t.Errorf("ReminderDedupKey = %q, want %q", key, want)
	}

	// Time of day never changes the key.
	other := ReminderDedupKey(userID, time.Date(2025, time.June, 15, 2, 0, 0, 0, time.UTC))
	if key != other {
		t.Errorf("keys differ for same calendar day: %q vs %q", key, other)
	}
}
