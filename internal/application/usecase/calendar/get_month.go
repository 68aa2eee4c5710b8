// Package calendar contains calendar view use cases.
package calendar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/application/usecase/bill"
	"github.com/billwise/backend/internal/domain/entity"
	"github.com/billwise/backend/internal/domain/valueobject"
)

// GetMonthInput represents the input for building a month view.
type GetMonthInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
	AsOf   time.Time // reference "today"; zero value means time.Now
}

// DayBillOutput represents one bill inside a day bucket.
type DayBillOutput struct {
	ID              uuid.UUID
	Name            string
	EstimatedAmount decimal.Decimal
	Status          entity.BillStatus
	DaysToDue       int
	AutoPay         bool
}

// GetMonthOutput represents the rendered month view.
type GetMonthOutput struct {
	Month      string
	Days       []entity.CalendarDay
	BillsByDay map[int][]DayBillOutput
	TotalCount int
	TotalSum   decimal.Decimal
}

// GetMonthUseCase builds the 42-cell month view with bills bucketed per day.
type GetMonthUseCase struct {
	billRepo adapter.BillRepository
	userRepo adapter.UserRepository
	cache    adapter.CalendarCache
}

// NewGetMonthUseCase creates a new GetMonthUseCase instance.
func NewGetMonthUseCase(
	billRepo adapter.BillRepository,
	userRepo adapter.UserRepository,
	cache adapter.CalendarCache,
) *GetMonthUseCase {
	return &GetMonthUseCase{
		billRepo: billRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Execute builds the month view. Results are served from the calendar cache
// when a fresh entry exists; cache failures fall through to a live build.
func (uc *GetMonthUseCase) Execute(ctx context.Context, input GetMonthInput) (*GetMonthOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	// Statuses and the today flag depend on the reference date, so cached
	// views are keyed by month plus the asOf calendar date.
	viewKey := input.Month.String() + "@" + asOf.Format("2006-01-02")

	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, input.UserID, viewKey); err == nil && payload != nil {
			var cached GetMonthOutput
			if json.Unmarshal(payload, &cached) == nil {
				return &cached, nil
			}
		}
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	bills, err := uc.billRepo.FindByFilter(ctx, adapter.BillFilter{
		UserID:     input.UserID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	days := BuildMonth(input.Month, asOf, user.FirstDayOfWeek.Weekday())
	buckets := BucketByDay(bills, input.Month)
	count, sum := MonthlyTotal(bills, input.Month)

	billsByDay := make(map[int][]DayBillOutput, len(buckets))
	for day, dayBills := range buckets {
		outputs := make([]DayBillOutput, 0, len(dayBills))
		for _, b := range dayBills {
			status, daysToDue := bill.Classify(b, asOf)
			outputs = append(outputs, DayBillOutput{
				ID:              b.ID,
				Name:            b.Name,
				EstimatedAmount: b.EstimatedAmount,
				Status:          status,
				DaysToDue:       daysToDue,
				AutoPay:         b.AutoPay,
			})
		}
		billsByDay[day] = outputs
	}

	output := &GetMonthOutput{
		Month:      input.Month.String(),
		Days:       days,
		BillsByDay: billsByDay,
		TotalCount: count,
		TotalSum:   sum,
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(output); err == nil {
			_ = uc.cache.Set(ctx, input.UserID, viewKey, payload)
		}
	}

	return output, nil
}
