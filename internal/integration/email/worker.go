package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/email/templates"
)

// Worker processes the reminder queue and sends emails.
type Worker struct {
	queue        adapter.ReminderQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the reminder worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new reminder worker.
func NewWorker(queue adapter.ReminderQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending reminders.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending reminder jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing reminder batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single reminder job.
func (w *Worker) processJob(ctx context.Context, job *entity.ReminderJob) {
	logger := slog.With(
		"job_id", job.ID,
		"recipient", job.RecipientEmail,
		"bills", len(job.BillIDs),
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderer.Render(BillReminderTemplate, reminderData(job))
	if err != nil {
		logger.Error("Failed to render reminder template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to send reminder email", "error", err)

		var reminderErr *domainerror.ReminderError
		isPermanent := errors.As(err, &reminderErr) && reminderErr.IsPermanent()

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Reminder email sent", "resend_id", result.ResendID)
}

// reminderData converts the persisted template data back into the typed
// template input. The data went through a JSON round trip, so nested lists
// arrive as []interface{}.
func reminderData(job *entity.ReminderJob) templates.BillReminderData {
	data := templates.BillReminderData{
		UserName: getString(job.TemplateData, "user_name"),
		DueDate:  getString(job.TemplateData, "due_date"),
		Currency: getString(job.TemplateData, "currency"),
	}

	total := decimal.Zero
	if rawBills, ok := job.TemplateData["bills"].([]interface{}); ok {
		for _, raw := range rawBills {
			line, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			amount := getString(line, "amount")
			data.Bills = append(data.Bills, templates.BillReminderLine{
				Name:   getString(line, "name"),
				Amount: amount,
			})
			if parsed, err := decimal.NewFromString(amount); err == nil {
				total = total.Add(parsed)
			}
		}
	}
	data.Total = total.StringFixed(2)

	return data
}

// handleFailure handles a failed reminder job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.ReminderJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.ReminderStatusFailed {
		slog.Warn("Reminder job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Reminder job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow processes all pending reminders immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
