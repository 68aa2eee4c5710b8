// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// fakeBillRepo is an in-memory BillRepository for use case tests.
type fakeBillRepo struct {
	bills    map[uuid.UUID]*entity.Bill
	payments []*entity.Payment
}

func newFakeBillRepo(bills ...*entity.Bill) *fakeBillRepo {
	repo := &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
	for _, b := range bills {
		repo.bills[b.ID] = b
	}
	return repo
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, domainerror.NewBillError(domainerror.ErrCodeBillNotFound, "bill not found", domainerror.ErrBillNotFound)
	}
	return bill, nil
}

func (r *fakeBillRepo) FindByFilter(_ context.Context, filter adapter.BillFilter) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range r.bills {
		if b.UserID != filter.UserID {
			continue
		}
		if filter.ActiveOnly && !b.IsActive {
			continue
		}
		if filter.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBillRepo) FindDueWithin(_ context.Context, from, to time.Time) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range r.bills {
		if b.IsActive && b.NotifyEnabled && !b.DueDate.Before(from) && !b.DueDate.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	if _, ok := r.bills[bill.ID]; !ok {
		return errors.New("bill not found")
	}
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	return nil
}

func (r *fakeBillRepo) AddPayment(_ context.Context, payment *entity.Payment) error {
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakeBillRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, b := range r.bills {
		if b.CategoryID != nil && *b.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func TestRecordPaymentUseCase_AdvancesDueDate(t *testing.T) {
	userID := uuid.New()
	bill := entity.NewBill(userID, "Electricity", decimal.NewFromFloat(120.50),
		date(2025, time.June, 15), entity.RepeatCycleMonthly, 0, nil, "", false, true)
	repo := newFakeBillRepo(bill)
	uc := NewRecordPaymentUseCase(repo, nil)

	paidAt := date(2025, time.June, 14)
	output, err := uc.Execute(context.Background(), RecordPaymentInput{
		BillID: bill.ID,
		UserID: userID,
		Amount: decimal.NewFromFloat(118.30),
		PaidAt: paidAt,
		Note:   "June invoice",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if want := date(2025, time.July, 15); !output.NextDue.Equal(want) {
		t.Errorf("NextDue = %v, want %v", output.NextDue, want)
	}
	if !output.Bill.DueDate.Equal(output.NextDue) {
		t.Errorf("bill due date = %v, want %v", output.Bill.DueDate, output.NextDue)
	}
	if output.Bill.LastPaymentDate == nil || !output.Bill.LastPaymentDate.Equal(paidAt) {
		t.Errorf("LastPaymentDate = %v, want %v", output.Bill.LastPaymentDate, paidAt)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("repo holds %d payments, want 1", len(repo.payments))
	}
	if !repo.payments[0].Amount.Equal(decimal.NewFromFloat(118.30)) {
		t.Errorf("payment amount = %s, want 118.3", repo.payments[0].Amount)
	}

	// The paid occurrence now classifies as paid.
	status, _ := Classify(output.Bill, date(2025, time.June, 20))
	if status != entity.BillStatusPaid {
		t.Errorf("status after payment = %s, want paid", status)
	}
}

func TestRecordPaymentUseCase_CatchesUpSkippedCycles(t *testing.T) {
	userID := uuid.New()
	// Due Mar 10, paid three months late: the due date must land strictly
	// after the payment date, not merely one cycle forward.
	bill := entity.NewBill(userID, "Gym", decimal.NewFromInt(40),
		date(2025, time.March, 10), entity.RepeatCycleMonthly, 0, nil, "", false, true)
	repo := newFakeBillRepo(bill)
	uc := NewRecordPaymentUseCase(repo, nil)

	output, err := uc.Execute(context.Background(), RecordPaymentInput{
		BillID: bill.ID,
		UserID: userID,
		Amount: decimal.NewFromInt(40),
		PaidAt: date(2025, time.June, 20),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if want := date(2025, time.July, 10); !output.NextDue.Equal(want) {
		t.Errorf("NextDue = %v, want %v", output.NextDue, want)
	}
}

func TestRecordPaymentUseCase_Validation(t *testing.T) {
	userID := uuid.New()
	bill := entity.NewBill(userID, "Electricity", decimal.NewFromInt(120),
		date(2025, time.June, 15), entity.RepeatCycleMonthly, 0, nil, "", false, true)
	repo := newFakeBillRepo(bill)
	uc := NewRecordPaymentUseCase(repo, nil)

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			BillID: bill.ID,
			UserID: userID,
			Amount: decimal.Zero,
		})
		var billErr *domainerror.BillError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeInvalidPaymentAmount {
			t.Errorf("err = %v, want invalid payment amount", err)
		}
	})

	t.Run("rejects unknown bill", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			BillID: uuid.New(),
			UserID: userID,
			Amount: decimal.NewFromInt(10),
		})
		var billErr *domainerror.BillError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeBillNotFound {
			t.Errorf("err = %v, want bill not found", err)
		}
	})

	t.Run("rejects another user's bill", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			BillID: bill.ID,
			UserID: uuid.New(),
			Amount: decimal.NewFromInt(10),
		})
		var billErr *domainerror.BillError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeUnauthorizedBillAccess {
			t.Errorf("err = %v, want unauthorized bill access", err)
		}
	})

	t.Run("rejects inactive bill", func(t *testing.T) {
		inactive := entity.NewBill(userID, "Old plan", decimal.NewFromInt(30),
			date(2025, time.June, 15), entity.RepeatCycleMonthly, 0, nil, "", false, true)
		inactive.IsActive = false
		repo.bills[inactive.ID] = inactive

		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			BillID: inactive.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(10),
		})
		var billErr *domainerror.BillError
		if !errors.As(err, &billErr) || billErr.Code != domainerror.ErrCodeBillInactive {
			t.Errorf("err = %v, want bill inactive", err)
		}
	})
}
