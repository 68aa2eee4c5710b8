package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for registering a partial or full
// payment against a debt.
type RecordPaymentInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
	PaidAt time.Time
	Note   string
}

// RecordPaymentOutput represents the output of registering a debt payment.
type RecordPaymentOutput struct {
	Debt    *DebtOutput
	Payment *entity.Payment
}

// RecordPaymentUseCase handles registering payments against debts.
type RecordPaymentUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(debtRepo adapter.DebtRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		debtRepo: debtRepo,
	}
}

// Execute appends the payment and settles the debt once the outstanding
// balance reaches zero. Payments against settled debts are rejected.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtPayment,
			fmt.Sprintf("payment amount must be greater than zero, got %s", input.Amount.String()),
			domainerror.ErrInvalidDebtPayment,
		)
	}

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

	if debt.IsSettled {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeDebtAlreadySettled,
			"debt is already settled",
			domainerror.ErrDebtAlreadySettled,
		)
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payment := &entity.Payment{
		ID:     uuid.New(),
		Amount: input.Amount,
		PaidAt: paidAt,
		Note:   input.Note,
	}

	if err := uc.debtRepo.AddPayment(ctx, input.DebtID, payment); err != nil {
		return nil, err
	}

	debt.RegisterPayment(input.Amount)
	debt.Payments = append(debt.Payments, payment)

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	return &RecordPaymentOutput{
		Debt:    project(debt),
		Payment: payment,
	}, nil
}
