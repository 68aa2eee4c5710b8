package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/persistence/model"
)

// reminderQueueRepository implements the adapter.ReminderQueueRepository interface.
type reminderQueueRepository struct {
	db *gorm.DB
}

// NewReminderQueueRepository creates a new reminder queue repository instance.
func NewReminderQueueRepository(db *gorm.DB) adapter.ReminderQueueRepository {
	return &reminderQueueRepository{
		db: db,
	}
}

// Create adds a new reminder job to the queue.
func (r *reminderQueueRepository) Create(ctx context.Context, job *entity.ReminderJob) error {
	reminderModel := model.ReminderQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(reminderModel)
	if result.Error != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderQueueFailed,
			"failed to create reminder job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed.
func (r *reminderQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReminderJob, error) {
	var models []model.ReminderQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.ReminderStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ReminderJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}

	return jobs, nil
}

// Update saves changes to a reminder job.
func (r *reminderQueueRepository) Update(ctx context.Context, job *entity.ReminderJob) error {
	reminderModel := model.ReminderQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a specific job by its ID.
func (r *reminderQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReminderJob, error) {
	var reminderModel model.ReminderQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&reminderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeReminderQueueFailed,
				"reminder job not found",
				result.Error,
			)
		}
		return nil, result.Error
	}
	return reminderModel.ToEntity(), nil
}

// ExistsByDedupKey checks whether a reminder was already queued for the key.
func (r *reminderQueueRepository) ExistsByDedupKey(ctx context.Context, dedupKey string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReminderQueueModel{}).
		Where("dedup_key = ?", dedupKey).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteOldSentJobs removes sent jobs older than the specified number of days.
func (r *reminderQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.ReminderStatusSent).
		Where("processed_at < ?", cutoff).
		Delete(&model.ReminderQueueModel{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
