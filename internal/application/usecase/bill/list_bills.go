// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
)

// ListBillsInput represents the input for listing bills.
type ListBillsInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Status     *entity.BillStatus
	ActiveOnly bool
	AsOf       time.Time // reference "today"; zero value means time.Now
}

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Bills []*entity.BillWithStatus
}

// ListBillsUseCase handles listing bills with their derived status projections.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill listing. Status filtering happens after
// classification since status is a projection, not a stored column.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	bills, err := uc.billRepo.FindByFilter(ctx, adapter.BillFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	output := &ListBillsOutput{
		Bills: make([]*entity.BillWithStatus, 0, len(bills)),
	}

	for _, b := range bills {
		projection := Project(b, asOf)
		if input.Status != nil && projection.Status != *input.Status {
			continue
		}
		output.Bills = append(output.Bills, projection)
	}

	return output, nil
}
