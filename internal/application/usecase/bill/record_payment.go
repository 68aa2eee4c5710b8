// Package bill contains bill-related use cases.
package bill

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

// RecordPaymentInput represents the input for recording a bill payment.
type RecordPaymentInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
	PaidAt time.Time // zero value means time.Now
	Note   string
}

// RecordPaymentOutput represents the output of recording a bill payment.
type RecordPaymentOutput struct {
	Bill    *entity.Bill
	Payment *entity.Payment
	NextDue time.Time
}

// RecordPaymentUseCase handles the bill payment lifecycle: an immutable
// payment is appended, the last payment date is set and the due date
// advances to the next unpaid occurrence.
type RecordPaymentUseCase struct {
	billRepo adapter.BillRepository
	cache    adapter.CalendarCache
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(billRepo adapter.BillRepository, cache adapter.CalendarCache) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		billRepo: billRepo,
		cache:    cache,
	}
}

// Execute performs the payment recording.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
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

	if !bill.IsActive {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillInactive,
			"cannot record a payment against an inactive bill",
			domainerror.ErrBillInactive,
		)
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payment := entity.NewPayment(bill.ID, input.Amount, paidAt, input.Note)
	if err := uc.billRepo.AddPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	// Advance past the paid occurrence. Overdue bills that skipped several
	// cycles catch up until the due date lands after the payment date.
	nextDue := NextOccurrence(bill.DueDate, bill.RepeatCycle, bill.CustomIntervalDays)
	nextDue = NextOccurrenceAfter(nextDue, bill.RepeatCycle, bill.CustomIntervalDays, paidAt)

	bill.DueDate = nextDue
	bill.LastPaymentDate = &paidAt
	bill.Payments = append(bill.Payments, payment)
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to advance bill due date: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateUser(ctx, input.UserID)
	}

	return &RecordPaymentOutput{
		Bill:    bill,
		Payment: payment,
		NextDue: nextDue,
	}, nil
}
