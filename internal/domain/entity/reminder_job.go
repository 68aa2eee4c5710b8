// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReminderStatus represents the status of a reminder job in the queue.
type ReminderStatus string

const (
	ReminderStatusPending    ReminderStatus = "pending"
	ReminderStatusProcessing ReminderStatus = "processing"
	ReminderStatusSent       ReminderStatus = "sent"
	ReminderStatusFailed     ReminderStatus = "failed"
)

// ReminderJob represents a due-soon reminder email waiting to be sent.
// One job may cover several bills of the same user that enter the
// due-soon window on the same day.
type ReminderJob struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RecipientEmail string
	RecipientName  string
	Subject        string
	BillIDs        []uuid.UUID
	DedupKey       string // user + due date, prevents duplicate reminders
	TemplateData   map[string]interface{}
	Status         ReminderStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewReminderJob creates a new ReminderJob with default values.
func NewReminderJob(
	userID uuid.UUID,
	recipientEmail, recipientName, subject string,
	billIDs []uuid.UUID,
	dueDate time.Time,
	data map[string]interface{},
) *ReminderJob {
	now := time.Now().UTC()
	return &ReminderJob{
		ID:             uuid.New(),
		UserID:         userID,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		BillIDs:        billIDs,
		DedupKey:       ReminderDedupKey(userID, dueDate),
		TemplateData:   data,
		Status:         ReminderStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// ReminderDedupKey builds the deduplication key for a user/due-date pair.
func ReminderDedupKey(userID uuid.UUID, dueDate time.Time) string {
	return fmt.Sprintf("%s:%s", userID, dueDate.Format("2006-01-02"))
}

// MarkProcessing marks the reminder job as currently being processed.
func (r *ReminderJob) MarkProcessing() {
	r.Status = ReminderStatusProcessing
}

// MarkSent marks the reminder job as successfully sent.
func (r *ReminderJob) MarkSent(resendID string) {
	r.Status = ReminderStatusSent
	r.ResendID = resendID
	now := time.Now().UTC()
	r.ProcessedAt = &now
}

// MarkFailed marks the reminder job as failed and schedules a retry
// if attempts remain.
func (r *ReminderJob) MarkFailed(err error, permanent bool) {
	r.Attempts++
	r.LastError = err.Error()

	if permanent || r.Attempts >= r.MaxAttempts {
		r.Status = ReminderStatusFailed
		now := time.Now().UTC()
		r.ProcessedAt = &now
	} else {
		r.Status = ReminderStatusPending
		r.ScheduledAt = r.calculateNextRetry()
	}
}

// calculateNextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (r *ReminderJob) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if r.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[r.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// CanRetry returns true if the reminder job can be retried.
func (r *ReminderJob) CanRetry() bool {
	return r.Status == ReminderStatusPending && r.Attempts < r.MaxAttempts
}
