package debt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for debt editing. Nil fields are left
// untouched.
type UpdateDebtInput struct {
	DebtID       uuid.UUID
	UserID       uuid.UUID
	Counterparty *string
	TotalAmount  *decimal.Decimal
	DueDate      *time.Time
	ClearDueDate bool
	Notes        *string
}

// UpdateDebtUseCase handles debt editing.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute applies the partial update. Raising the total can reopen a settled
// debt; lowering it below the paid amount settles it.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*DebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return nil, err
	}

	if debt.UserID != input.UserID {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeUnauthorizedDebtAccess,
			"unauthorized access to debt",
			domainerror.ErrUnauthorizedDebtAccess,
		)
	}

	if input.Counterparty != nil {
		counterparty := strings.TrimSpace(*input.Counterparty)
		if counterparty == "" {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtCounterpartyRequired,
				"counterparty name is required",
				domainerror.ErrDebtCounterpartyRequired,
			)
		}
		debt.Counterparty = counterparty
	}

	if input.TotalAmount != nil {
		if !input.TotalAmount.IsPositive() {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDebtAmount,
				fmt.Sprintf("total amount must be greater than zero, got %s", input.TotalAmount.String()),
				domainerror.ErrInvalidDebtAmount,
			)
		}
		debt.TotalAmount = *input.TotalAmount
		debt.IsSettled = debt.PaidAmount.GreaterThanOrEqual(debt.TotalAmount)
	}

	if input.ClearDueDate {
		debt.DueDate = nil
	} else if input.DueDate != nil {
		debt.DueDate = input.DueDate
	}

	if input.Notes != nil {
		debt.Notes = *input.Notes
	}

	debt.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	return project(debt), nil
}
