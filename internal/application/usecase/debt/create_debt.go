// Package debt contains debt and receivable use cases.
package debt

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

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID       uuid.UUID
	Counterparty string
	Type         entity.DebtType
	TotalAmount  decimal.Decimal
	DueDate      *time.Time
	Notes        string
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	counterparty := strings.TrimSpace(input.Counterparty)
	if counterparty == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeDebtCounterpartyRequired,
			"counterparty name is required",
			domainerror.ErrDebtCounterpartyRequired,
		)
	}

	if !entity.IsValidDebtType(input.Type) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtType,
			"type must be 'debt' or 'receivable'",
			domainerror.ErrInvalidDebtType,
		)
	}

	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidDebtAmount,
		)
	}

	debt := entity.NewDebt(
		input.UserID,
		counterparty,
		input.Type,
		input.TotalAmount,
		input.DueDate,
		input.Notes,
	)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}
