package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/billwise/backend/internal/domain/entity"
)

// ReminderQueueModel represents the reminder_queue table in the database.
type ReminderQueueModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	RecipientEmail string         `gorm:"type:varchar(255);not null"`
	RecipientName  string         `gorm:"type:varchar(255)"`
	Subject        string         `gorm:"type:varchar(500);not null"`
	BillIDs        pq.StringArray `gorm:"type:uuid[]"`
	DedupKey       string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	TemplateData   string         `gorm:"type:jsonb;not null;default:'{}'"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int            `gorm:"not null;default:0"`
	MaxAttempts    int            `gorm:"not null;default:3"`
	LastError      string         `gorm:"type:text"`
	ResendID       string         `gorm:"type:varchar(100)"`
	CreatedAt      time.Time      `gorm:"not null"`
	ScheduledAt    time.Time      `gorm:"not null;index"`
	ProcessedAt    sql.NullTime   `gorm:"type:timestamptz"`
}

// TableName returns the table name for the ReminderQueueModel.
func (ReminderQueueModel) TableName() string {
	return "reminder_queue"
}

// ToEntity converts a ReminderQueueModel to a domain ReminderJob entity.
func (m *ReminderQueueModel) ToEntity() *entity.ReminderJob {
	var templateData map[string]interface{}
	if m.TemplateData != "" {
		if err := json.Unmarshal([]byte(m.TemplateData), &templateData); err != nil {
			slog.Warn("Failed to unmarshal reminder template data", "error", err, "id", m.ID)
		}
	}
	if templateData == nil {
		templateData = make(map[string]interface{})
	}

	billIDs := make([]uuid.UUID, 0, len(m.BillIDs))
	for _, raw := range m.BillIDs {
		if id, err := uuid.Parse(raw); err == nil {
			billIDs = append(billIDs, id)
		}
	}

	var processedAt *time.Time
	if m.ProcessedAt.Valid {
		processedAt = &m.ProcessedAt.Time
	}

	return &entity.ReminderJob{
		ID:             m.ID,
		UserID:         m.UserID,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		BillIDs:        billIDs,
		DedupKey:       m.DedupKey,
		TemplateData:   templateData,
		Status:         entity.ReminderStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}

// ReminderQueueModelFromEntity creates a ReminderQueueModel from a domain ReminderJob entity.
func ReminderQueueModelFromEntity(job *entity.ReminderJob) *ReminderQueueModel {
	// Serialize template data to JSON - fallback to empty object on error
	templateDataJSON, err := json.Marshal(job.TemplateData)
	if err != nil {
		slog.Error("Failed to marshal reminder template data", "error", err, "job_id", job.ID)
		templateDataJSON = []byte("{}")
	}

	billIDs := make(pq.StringArray, len(job.BillIDs))
	for i, id := range job.BillIDs {
		billIDs[i] = id.String()
	}

	var processedAt sql.NullTime
	if job.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}

	return &ReminderQueueModel{
		ID:             job.ID,
		UserID:         job.UserID,
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		BillIDs:        billIDs,
		DedupKey:       job.DedupKey,
		TemplateData:   string(templateDataJSON),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    processedAt,
	}
}
