package debt

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// GetDebtInput represents the input for retrieving a single debt.
type GetDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// GetDebtUseCase handles retrieving a single debt with payment history.
type GetDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(debtRepo adapter.DebtRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute retrieves the debt with its payments sorted by payment date.
func (uc *GetDebtUseCase) Execute(ctx context.Context, input GetDebtInput) (*DebtOutput, error) {
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

	sort.Slice(debt.Payments, func(i, j int) bool {
		return debt.Payments[i].PaidAt.Before(debt.Payments[j].PaidAt)
	})

	return project(debt), nil
}
