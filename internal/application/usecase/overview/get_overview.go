// Package overview contains the home-screen summary use case.
package overview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/application/usecase/bill"
	"github.com/billwise/backend/internal/domain/entity"
	"github.com/billwise/backend/internal/domain/valueobject"
)

// GetOverviewInput represents the input for the overview summary.
type GetOverviewInput struct {
	UserID uuid.UUID
	AsOf   time.Time // Zero means now
}

// GetOverviewOutput represents the output of the overview summary.
type GetOverviewOutput struct {
	Month string

	// Bill status counts across active bills
	PaidCount     int
	UpcomingCount int
	DueSoonCount  int
	OverdueCount  int

	// Totals for bills due in the current month
	MonthBillCount int
	MonthBillTotal decimal.Decimal

	// Outstanding balances across open debts and receivables
	TotalOwed       decimal.Decimal
	TotalReceivable decimal.Decimal
}

// GetOverviewUseCase aggregates bill statuses and debt balances for the
// home screen.
type GetOverviewUseCase struct {
	billRepo adapter.BillRepository
	debtRepo adapter.DebtRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	billRepo adapter.BillRepository,
	debtRepo adapter.DebtRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		billRepo: billRepo,
		debtRepo: debtRepo,
	}
}

// Execute builds the summary as of the given instant.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	month := valueobject.MonthOf(asOf)

	bills, err := uc.billRepo.FindByFilter(ctx, adapter.BillFilter{
		UserID:     input.UserID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	output := &GetOverviewOutput{
		Month:           month.String(),
		MonthBillTotal:  decimal.Zero,
		TotalOwed:       decimal.Zero,
		TotalReceivable: decimal.Zero,
	}

	for _, b := range bills {
		status, _ := bill.Classify(b, asOf)
		switch status {
		case entity.BillStatusPaid:
			output.PaidCount++
		case entity.BillStatusUpcoming:
			output.UpcomingCount++
		case entity.BillStatusDueSoon:
			output.DueSoonCount++
		case entity.BillStatusOverdue:
			output.OverdueCount++
		}

		if month.Contains(b.DueDate) {
			output.MonthBillCount++
			output.MonthBillTotal = output.MonthBillTotal.Add(b.EstimatedAmount)
		}
	}

	debts, err := uc.debtRepo.FindByFilter(ctx, adapter.DebtFilter{
		UserID:         input.UserID,
		IncludeSettled: false,
	})
	if err != nil {
		return nil, err
	}

	for _, d := range debts {
		remaining := d.RemainingAmount()
		switch d.Type {
		case entity.DebtTypeDebt:
			output.TotalOwed = output.TotalOwed.Add(remaining)
		case entity.DebtTypeReceivable:
			output.TotalReceivable = output.TotalReceivable.Add(remaining)
		}
	}

	return output, nil
}
