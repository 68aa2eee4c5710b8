package debt

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID         uuid.UUID
	Type           *entity.DebtType
	IncludeSettled bool
}

// DebtOutput represents a single debt in the output with its derived balance.
type DebtOutput struct {
	Debt      *entity.Debt
	Remaining decimal.Decimal
	Progress  float64 // paid fraction in [0, 1] for display
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts           []*DebtOutput
	TotalOwed       decimal.Decimal // outstanding across debts
	TotalReceivable decimal.Decimal // outstanding across receivables
}

// ListDebtsUseCase handles listing debts with derived balances.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt listing.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindByFilter(ctx, adapter.DebtFilter{
		UserID:         input.UserID,
		Type:           input.Type,
		IncludeSettled: input.IncludeSettled,
	})
	if err != nil {
		return nil, err
	}

	output := &ListDebtsOutput{
		Debts:           make([]*DebtOutput, 0, len(debts)),
		TotalOwed:       decimal.Zero,
		TotalReceivable: decimal.Zero,
	}

	for _, d := range debts {
		projected := project(d)
		output.Debts = append(output.Debts, projected)

		switch d.Type {
		case entity.DebtTypeDebt:
			output.TotalOwed = output.TotalOwed.Add(projected.Remaining)
		case entity.DebtTypeReceivable:
			output.TotalReceivable = output.TotalReceivable.Add(projected.Remaining)
		}
	}

	return output, nil
}

// project derives the display balance for a debt. A zero-total debt counts as
// fully paid.
func project(d *entity.Debt) *DebtOutput {
	progress := 1.0
	if d.TotalAmount.IsPositive() {
		progress, _ = d.PaidAmount.Div(d.TotalAmount).Float64()
		if progress > 1 {
			progress = 1
		}
	}

	return &DebtOutput{
		Debt:      d,
		Remaining: d.RemainingAmount(),
		Progress:  progress,
	}
}
