// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// DeactivateBillInput represents the input for bill deactivation.
type DeactivateBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// DeactivateBillOutput represents the output of bill deactivation.
type DeactivateBillOutput struct {
	Success bool
}

// DeactivateBillUseCase removes a bill from all views without deleting its
// payment history.
type DeactivateBillUseCase struct {
	billRepo adapter.BillRepository
	cache    adapter.CalendarCache
}

// NewDeactivateBillUseCase creates a new DeactivateBillUseCase instance.
func NewDeactivateBillUseCase(billRepo adapter.BillRepository, cache adapter.CalendarCache) *DeactivateBillUseCase {
	return &DeactivateBillUseCase{
		billRepo: billRepo,
		cache:    cache,
	}
}

// Execute performs the bill deactivation (soft delete).
func (uc *DeactivateBillUseCase) Execute(ctx context.Context, input DeactivateBillInput) (*DeactivateBillOutput, error) {
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

	if err := uc.billRepo.Delete(ctx, input.BillID); err != nil {
		return nil, fmt.Errorf("failed to delete bill: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateUser(ctx, input.UserID)
	}

	return &DeactivateBillOutput{
		Success: true,
	}, nil
}
