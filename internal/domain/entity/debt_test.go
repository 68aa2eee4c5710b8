// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestDebt_RemainingAmount(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  string
	}{
		{"nothing paid", 500, 0, "500"},
		{"partially paid", 500, 120.50, "379.5"},
		{"fully paid", 500, 500, "0"},
		{"overpaid floors at zero", 500, 600, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Debt{
				TotalAmount: decimal.NewFromFloat(tt.total),
				PaidAmount:  decimal.NewFromFloat(tt.paid),
			}
			if got := d.RemainingAmount(); got.String() != tt.want {
				t.Errorf("RemainingAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDebt_RegisterPayment(t *testing.T) {
	t.Run("partial payment keeps debt open", func(t *testing.T) {
		d := NewDebt(uuid.New(), "Alice", DebtTypeDebt, decimal.NewFromInt(500), nil, "")
		d.RegisterPayment(decimal.NewFromInt(200))

		if d.IsSettled {
			t.Error("expected debt to stay open")
		}
		if !d.PaidAmount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("PaidAmount = %s, want 200", d.PaidAmount)
		}
		if !d.RemainingAmount().Equal(decimal.NewFromInt(300)) {
			t.Errorf("RemainingAmount = %s, want 300", d.RemainingAmount())
		}
	})

	t.Run("exact payment settles", func(t *testing.T) {
		d := NewDebt(uuid.New(), "Alice", DebtTypeDebt, decimal.NewFromInt(500), nil, "")
		d.RegisterPayment(decimal.NewFromInt(500))

		if !d.IsSettled {
			t.Error("expected debt to settle")
		}
	})

	t.Run("accumulated payments settle", func(t *testing.T) {
		d := NewDebt(uuid.New(), "Bob", DebtTypeReceivable, decimal.NewFromInt(300), nil, "")
		d.RegisterPayment(decimal.NewFromInt(100))
		d.RegisterPayment(decimal.NewFromInt(100))
		if d.IsSettled {
			t.Error("expected debt to stay open at 200 of 300")
		}
		d.RegisterPayment(decimal.NewFromInt(100))
		if !d.IsSettled {
			t.Error("expected debt to settle after third payment")
		}
	})

	t.Run("overpayment settles and floors remaining", func(t *testing.T) {
		d := NewDebt(uuid.New(), "Alice", DebtTypeDebt, decimal.NewFromInt(500), nil, "")
		d.RegisterPayment(decimal.NewFromInt(600))

		if !d.IsSettled {
			t.Error("expected debt to settle")
		}
		if !d.RemainingAmount().IsZero() {
			t.Errorf("RemainingAmount = %s, want 0", d.RemainingAmount())
		}
	})
}

func TestNewDebt(t *testing.T) {
	userID := uuid.New()
	due := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	d := NewDebt(userID, "Carol", DebtTypeReceivable, decimal.NewFromInt(250), &due, "lunch money")

	if d.UserID != userID {
		t.Errorf("UserID = %s, want %s", d.UserID, userID)
	}
	if d.Type != DebtTypeReceivable {
		t.Errorf("Type = %s, want receivable", d.Type)
	}
	if !d.PaidAmount.IsZero() {
		t.Errorf("PaidAmount = %s, want 0", d.PaidAmount)
	}
	if d.IsSettled {
		t.Error("new debt must not be settled")
	}
	if d.DueDate == nil || !d.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", d.DueDate, due)
	}
}

func TestIsValidDebtType(t *testing.T) {
	if !IsValidDebtType(DebtTypeDebt) || !IsValidDebtType(DebtTypeReceivable) {
		t.Error("expected known types to be valid")
	}
	if IsValidDebtType(DebtType("loan")) {
		t.Error("expected unknown type to be invalid")
	}
}
