// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtType distinguishes money the user owes from money owed to the user.
type DebtType string

const (
	DebtTypeDebt       DebtType = "debt"
	DebtTypeReceivable DebtType = "receivable"
)

// Debt represents a debt or receivable tracked against a counterparty.
type Debt struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Counterparty string
	Type         DebtType
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	DueDate      *time.Time
	Notes        string
	IsSettled    bool
	Payments     []*Payment
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewDebt creates a new Debt entity.
func NewDebt(
	userID uuid.UUID,
	counterparty string,
	debtType DebtType,
	totalAmount decimal.Decimal,
	dueDate *time.Time,
	notes string,
) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:           uuid.New(),
		UserID:       userID,
		Counterparty: counterparty,
		Type:         debtType,
		TotalAmount:  totalAmount,
		PaidAmount:   decimal.Zero,
		DueDate:      dueDate,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RemainingAmount returns the outstanding balance, floored at zero for display.
// PaidAmount is allowed to exceed TotalAmount at the data layer; the floor
// applies only to the projection.
func (d *Debt) RemainingAmount() decimal.Decimal {
	remaining := d.TotalAmount.Sub(d.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// RegisterPayment applies a payment to the debt, settling it when the
// outstanding balance reaches zero.
func (d *Debt) RegisterPayment(amount decimal.Decimal) {
	d.PaidAmount = d.PaidAmount.Add(amount)
	if d.PaidAmount.GreaterThanOrEqual(d.TotalAmount) {
		d.IsSettled = true
	}
	d.UpdatedAt = time.Now().UTC()
}

// IsValidDebtType reports whether the given type is a known debt type.
func IsValidDebtType(debtType DebtType) bool {
	return debtType == DebtTypeDebt || debtType == DebtTypeReceivable
}
