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

// UpdateBillInput represents the input for bill update. Nil fields are left unchanged.
type UpdateBillInput struct {
	BillID             uuid.UUID
	UserID             uuid.UUID
	Name               *string
	EstimatedAmount    *decimal.Decimal
	DueDate            *time.Time
	RepeatCycle        *entity.RepeatCycle
	CustomIntervalDays *int
	CategoryID         *uuid.UUID
	ClearCategory      bool
	Notes              *string
	IsActive           *bool
	AutoPay            *bool
	NotifyEnabled      *bool
}

// UpdateBillOutput represents the output of bill update.
type UpdateBillOutput struct {
	Bill *entity.Bill
}

// UpdateBillUseCase handles bill update logic.
type UpdateBillUseCase struct {
	billRepo     adapter.BillRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.CalendarCache
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(
	billRepo adapter.BillRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.CalendarCache,
) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the bill update.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	bill, err := uc.billRepo.FindByID(ctx, input.BillID)
	if err != nil {
		return nil, err
	}

	if bill.UserID != input.UserID {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeUnauthorizedBillAccess,
			"unauthorized access to bill",
			domainerror.ErrUnauthorizedBillAccess,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNameRequired,
				"bill name is required",
				domainerror.ErrBillNameRequired,
			)
		}
		bill.Name = name
	}

	if input.EstimatedAmount != nil {
		if input.EstimatedAmount.IsNegative() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillAmount,
				"estimated amount must not be negative",
				domainerror.ErrInvalidBillAmount,
			)
		}
		bill.EstimatedAmount = *input.EstimatedAmount
	}

	if input.RepeatCycle != nil {
		if !entity.IsValidRepeatCycle(*input.RepeatCycle) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidRepeatCycle,
				"repeat cycle must be 'daily', 'weekly', 'monthly', 'yearly' or 'custom'",
				domainerror.ErrInvalidRepeatCycle,
			)
		}
		bill.RepeatCycle = *input.RepeatCycle
	}

	if input.CustomIntervalDays != nil {
		bill.CustomIntervalDays = *input.CustomIntervalDays
	}

	if bill.RepeatCycle == entity.RepeatCycleCustom && bill.CustomIntervalDays <= 0 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeCustomIntervalRequired,
			"custom repeat cycle requires a positive interval in days",
			domainerror.ErrCustomIntervalRequired,
		)
	}

	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	}

	if input.ClearCategory {
		bill.CategoryID = nil
	} else if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || category.UserID != input.UserID {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillCategoryNotFound,
				"category not found",
				domainerror.ErrBillCategoryNotFound,
			)
		}
		bill.CategoryID = input.CategoryID
	}

	if input.Notes != nil {
		bill.Notes = *input.Notes
	}
	if input.IsActive != nil {
		bill.IsActive = *input.IsActive
	}
	if input.AutoPay != nil {
		bill.AutoPay = *input.AutoPay
	}
	if input.NotifyEnabled != nil {
		bill.NotifyEnabled = *input.NotifyEnabled
	}

	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateUser(ctx, input.UserID)
	}

	return &UpdateBillOutput{
		Bill: bill,
	}, nil
}
