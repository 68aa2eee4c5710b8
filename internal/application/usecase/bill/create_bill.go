// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// CreateBillInput represents the input for bill creation.
type CreateBillInput struct {
	UserID             uuid.UUID
	Name               string
	EstimatedAmount    decimal.Decimal
	DueDate            time.Time
	RepeatCycle        entity.RepeatCycle
	CustomIntervalDays int
	CategoryID         *uuid.UUID
	Notes              string
	AutoPay            bool
	NotifyEnabled      bool
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.Bill
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo     adapter.BillRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.CalendarCache
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(
	billRepo adapter.BillRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.CalendarCache,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the bill creation.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNameRequired,
			"bill name is required",
			domainerror.ErrBillNameRequired,
		)
	}

	if input.EstimatedAmount.IsNegative() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"estimated amount must not be negative",
			domainerror.ErrInvalidBillAmount,
		)
	}

	if !entity.IsValidRepeatCycle(input.RepeatCycle) {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidRepeatCycle,
			"repeat cycle must be 'daily', 'weekly', 'monthly', 'yearly' or 'custom'",
			domainerror.ErrInvalidRepeatCycle,
		)
	}

	if input.RepeatCycle == entity.RepeatCycleCustom && input.CustomIntervalDays <= 0 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeCustomIntervalRequired,
			"custom repeat cycle requires a positive interval in days",
			domainerror.ErrCustomIntervalRequired,
		)
	}

	// Validate category ownership when provided
	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillCategoryNotFound,
				"category not found",
				domainerror.ErrBillCategoryNotFound,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillCategoryNotFound,
				"category not found",
				domainerror.ErrBillCategoryNotFound,
			)
		}
	}

	bill := entity.NewBill(
		input.UserID,
		name,
		input.EstimatedAmount,
		input.DueDate,
		input.RepeatCycle,
		input.CustomIntervalDays,
		input.CategoryID,
		input.Notes,
		input.AutoPay,
		input.NotifyEnabled,
	)

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateUser(ctx, input.UserID)
	}

	return &CreateBillOutput{
		Bill: bill,
	}, nil
}
