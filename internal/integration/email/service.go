package email

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// BillReminderTemplate is the template name for due-soon reminder emails.
const BillReminderTemplate = "bill_reminder"

// QueueDueSoonReminderInput describes one reminder email to queue. Bills
// share the same user and due date.
type QueueDueSoonReminderInput struct {
	UserID         uuid.UUID
	RecipientEmail string
	RecipientName  string
	Currency       string
	DueDate        time.Time
	Bills          []*entity.Bill
}

// Service handles reminder queueing operations.
type Service struct {
	queue adapter.ReminderQueueRepository
}

// NewService creates a new reminder service.
func NewService(queue adapter.ReminderQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueDueSoonReminder queues a due-soon reminder email. Queueing is
// idempotent per user and due date: a second call for the same pair is a
// no-op.
func (s *Service) QueueDueSoonReminder(ctx context.Context, input QueueDueSoonReminderInput) error {
	dedupKey := entity.ReminderDedupKey(input.UserID, input.DueDate)

	exists, err := s.queue.ExistsByDedupKey(ctx, dedupKey)
	if err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderQueueFailed,
			"failed to check reminder dedup key",
			err,
		)
	}
	if exists {
		return nil
	}

	subject := fmt.Sprintf("Contas vencendo em %s - BillWise", input.DueDate.Format("02/01/2006"))

	billIDs := make([]uuid.UUID, 0, len(input.Bills))
	lines := make([]map[string]interface{}, 0, len(input.Bills))
	for _, b := range input.Bills {
		billIDs = append(billIDs, b.ID)
		lines = append(lines, map[string]interface{}{
			"name":   b.Name,
			"amount": b.EstimatedAmount.StringFixed(2),
		})
	}

	templateData := map[string]interface{}{
		"user_name": input.RecipientName,
		"currency":  input.Currency,
		"due_date":  input.DueDate.Format("02/01/2006"),
		"bills":     lines,
	}

	job := entity.NewReminderJob(
		input.UserID,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		billIDs,
		input.DueDate,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderQueueFailed,
			"failed to queue reminder email",
			err,
		)
	}

	return nil
}
