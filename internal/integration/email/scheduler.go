package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
)

// Scheduler periodically scans for bills entering the due-soon window and
// queues one reminder email per user and due date.
type Scheduler struct {
	billRepo   adapter.BillRepository
	userRepo   adapter.UserRepository
	service    *Service
	every      time.Duration
	windowDays int
}

// SchedulerConfig holds configuration for the reminder scheduler.
type SchedulerConfig struct {
	Every      time.Duration
	WindowDays int
}

// DefaultSchedulerConfig returns the default scheduler configuration.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Every:      time.Hour,
		WindowDays: entity.DueSoonWindowDays,
	}
}

// NewScheduler creates a new reminder scheduler.
func NewScheduler(
	billRepo adapter.BillRepository,
	userRepo adapter.UserRepository,
	service *Service,
	config SchedulerConfig,
) *Scheduler {
	return &Scheduler{
		billRepo:   billRepo,
		userRepo:   userRepo,
		service:    service,
		every:      config.Every,
		windowDays: config.WindowDays,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Reminder scheduler started",
		"every", s.every,
		"window_days", s.windowDays,
	)

	ticker := time.NewTicker(s.every)
	defer ticker.Stop()

	s.ScanOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return
		case <-ticker.C:
			s.ScanOnce(ctx)
		}
	}
}

// ScanOnce runs a single scheduling pass. Duplicate passes over the same
// window are harmless: queueing dedupes per user and due date.
func (s *Scheduler) ScanOnce(ctx context.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, s.windowDays)

	bills, err := s.billRepo.FindDueWithin(ctx, from, to)
	if err != nil {
		slog.Error("Failed to scan bills for reminders", "error", err)
		return
	}

	if len(bills) == 0 {
		return
	}

	// Group by user and due date so one email covers the day's bills
	type groupKey struct {
		userID uuid.UUID
		due    string
	}
	groups := make(map[groupKey][]*entity.Bill)
	for _, b := range bills {
		key := groupKey{userID: b.UserID, due: b.DueDate.Format("2006-01-02")}
		groups[key] = append(groups[key], b)
	}

	queued := 0
	for key, group := range groups {
		user, err := s.userRepo.FindByID(ctx, key.userID)
		if err != nil {
			slog.Error("Failed to load user for reminder", "user_id", key.userID, "error", err)
			continue
		}
		if !user.BillReminders {
			continue
		}

		if err := s.service.QueueDueSoonReminder(ctx, QueueDueSoonReminderInput{
			UserID:         user.ID,
			RecipientEmail: user.Email,
			RecipientName:  user.Name,
			Currency:       user.Currency,
			DueDate:        group[0].DueDate,
			Bills:          group,
		}); err != nil {
			slog.Error("Failed to queue reminder", "user_id", user.ID, "error", err)
			continue
		}
		queued++
	}

	if queued > 0 {
		slog.Info("Reminder scan complete", "groups", len(groups), "queued", queued)
	}
}
