// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// GetBillInput represents the input for retrieving a single bill.
type GetBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
	AsOf   time.Time
}

// GetBillOutput represents the output of retrieving a single bill.
type GetBillOutput struct {
	Bill *entity.BillWithStatus
}

// GetBillUseCase handles retrieving a single bill with payment history.
type GetBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewGetBillUseCase creates a new GetBillUseCase instance.
func NewGetBillUseCase(billRepo adapter.BillRepository) *GetBillUseCase {
	return &GetBillUseCase{
		billRepo: billRepo,
	}
}

// Execute retrieves the bill. Payments are stored append-only in arbitrary
// order and sorted by payment date for display.
func (uc *GetBillUseCase) Execute(ctx context.Context, input GetBillInput) (*GetBillOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

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

	sort.Slice(bill.Payments, func(i, j int) bool {
		return bill.Payments[i].PaidAt.Before(bill.Payments[j].PaidAt)
	})

	return &GetBillOutput{
		Bill: Project(bill, asOf),
	}, nil
}
