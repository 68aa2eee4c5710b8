// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepeatCycle represents the recurrence rule governing how a bill's
// due date advances after payment.
type RepeatCycle string

const (
	RepeatCycleDaily   RepeatCycle = "daily"
	RepeatCycleWeekly  RepeatCycle = "weekly"
	RepeatCycleMonthly RepeatCycle = "monthly"
	RepeatCycleYearly  RepeatCycle = "yearly"
	RepeatCycleCustom  RepeatCycle = "custom"
)

// BillStatus represents the derived payment status of a bill's current occurrence.
type BillStatus string

const (
	BillStatusPaid     BillStatus = "paid"
	BillStatusUpcoming BillStatus = "upcoming"
	BillStatusDueSoon  BillStatus = "due_soon"
	BillStatusOverdue  BillStatus = "overdue"
)

// DueSoonWindowDays is the fixed lookahead within which an unpaid bill
// is flagged for urgent attention.
const DueSoonWindowDays = 3

// Bill represents a recurring financial obligation. DueDate always holds the
// next unpaid occurrence, not the date the bill was created with.
type Bill struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	EstimatedAmount    decimal.Decimal
	DueDate            time.Time
	RepeatCycle        RepeatCycle
	CustomIntervalDays int // Required when RepeatCycle is custom
	CategoryID         *uuid.UUID
	Notes              string
	IsActive           bool
	AutoPay            bool
	NotifyEnabled      bool
	LastPaymentDate    *time.Time
	Payments           []*Payment
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewBill creates a new Bill entity.
func NewBill(
	userID uuid.UUID,
	name string,
	estimatedAmount decimal.Decimal,
	dueDate time.Time,
	cycle RepeatCycle,
	customIntervalDays int,
	categoryID *uuid.UUID,
	notes string,
	autoPay bool,
	notifyEnabled bool,
) *Bill {
	now := time.Now().UTC()

	return &Bill{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		EstimatedAmount:    estimatedAmount,
		DueDate:            dueDate,
		RepeatCycle:        cycle,
		CustomIntervalDays: customIntervalDays,
		CategoryID:         categoryID,
		Notes:              notes,
		IsActive:           true,
		AutoPay:            autoPay,
		NotifyEnabled:      notifyEnabled,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsValidRepeatCycle reports whether the given cycle is a known recurrence rule.
func IsValidRepeatCycle(cycle RepeatCycle) bool {
	switch cycle {
	case RepeatCycleDaily, RepeatCycleWeekly, RepeatCycleMonthly, RepeatCycleYearly, RepeatCycleCustom:
		return true
	}
	return false
}

// Payment represents a single payment made against a bill.
// Payments are immutable once created and only ever appended.
type Payment struct {
	ID     uuid.UUID
	BillID uuid.UUID
	Amount decimal.Decimal
	PaidAt time.Time
	Note   string
}

// NewPayment creates a new Payment entity.
func NewPayment(billID uuid.UUID, amount decimal.Decimal, paidAt time.Time, note string) *Payment {
	return &Payment{
		ID:     uuid.New(),
		BillID: billID,
		Amount: amount,
		PaidAt: paidAt,
		Note:   note,
	}
}

// BillWithStatus represents a bill together with its derived status projection.
type BillWithStatus struct {
	Bill      *Bill
	Status    BillStatus
	DaysToDue int
	NextDue   time.Time
}
