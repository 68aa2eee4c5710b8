package debt

import (
	"context"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute soft-deletes the debt. Payment records are retained.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		return err
	}

	if debt.UserID != input.UserID {
		return domainerror.NewDebtError(
			domainerror.ErrCodeUnauthorizedDebtAccess,
			"unauthorized access to debt",
			domainerror.ErrUnauthorizedDebtAccess,
		)
	}

	return uc.debtRepo.Delete(ctx, input.DebtID)
}
