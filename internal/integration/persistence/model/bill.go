package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/billwise/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(100);not null"`
	EstimatedAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate            time.Time       `gorm:"type:date;not null;index"`
	RepeatCycle        string          `gorm:"type:varchar(10);not null"`
	CustomIntervalDays int             `gorm:"default:0"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	Notes              string          `gorm:"type:text"`
	IsActive           bool            `gorm:"default:true;index"`
	AutoPay            bool            `gorm:"default:false"`
	NotifyEnabled      bool            `gorm:"default:true"`
	LastPaymentDate    *time.Time      `gorm:"type:date"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel  `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel      `gorm:"foreignKey:UserID;references:ID"`
	Payments []*PaymentModel `gorm:"foreignKey:BillID;references:ID"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel to a domain Bill entity.
func (m *BillModel) ToEntity() *entity.Bill {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	bill := &entity.Bill{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		EstimatedAmount:    m.EstimatedAmount,
		DueDate:            m.DueDate,
		RepeatCycle:        entity.RepeatCycle(m.RepeatCycle),
		CustomIntervalDays: m.CustomIntervalDays,
		CategoryID:         m.CategoryID,
		Notes:              m.Notes,
		IsActive:           m.IsActive,
		AutoPay:            m.AutoPay,
		NotifyEnabled:      m.NotifyEnabled,
		LastPaymentDate:    m.LastPaymentDate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          deletedAt,
	}

	for _, p := range m.Payments {
		bill.Payments = append(bill.Payments, p.ToEntity())
	}

	return bill
}

// BillFromEntity creates a BillModel from a domain Bill entity.
func BillFromEntity(bill *entity.Bill) *BillModel {
	var deletedAt gorm.DeletedAt
	if bill.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *bill.DeletedAt, Valid: true}
	}

	return &BillModel{
		ID:                 bill.ID,
		UserID:             bill.UserID,
		Name:               bill.Name,
		EstimatedAmount:    bill.EstimatedAmount,
		DueDate:            bill.DueDate,
		RepeatCycle:        string(bill.RepeatCycle),
		CustomIntervalDays: bill.CustomIntervalDays,
		CategoryID:         bill.CategoryID,
		Notes:              bill.Notes,
		IsActive:           bill.IsActive,
		AutoPay:            bill.AutoPay,
		NotifyEnabled:      bill.NotifyEnabled,
		LastPaymentDate:    bill.LastPaymentDate,
		CreatedAt:          bill.CreatedAt,
		UpdatedAt:          bill.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// PaymentModel represents the payments table. Rows are append-only; a
// payment belongs to either a bill or a debt.
type PaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BillID    *uuid.UUID      `gorm:"type:uuid;index"`
	DebtID    *uuid.UUID      `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAt    time.Time       `gorm:"type:timestamptz;not null"`
	Note      string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	p := &entity.Payment{
		ID:     m.ID,
		Amount: m.Amount,
		PaidAt: m.PaidAt,
		Note:   m.Note,
	}
	if m.BillID != nil {
		p.BillID = *m.BillID
	}
	return p
}

// BillPaymentFromEntity creates a PaymentModel for a bill payment.
func BillPaymentFromEntity(payment *entity.Payment) *PaymentModel {
	billID := payment.BillID
	return &PaymentModel{
		ID:        payment.ID,
		BillID:    &billID,
		Amount:    payment.Amount,
		PaidAt:    payment.PaidAt,
		Note:      payment.Note,
		CreatedAt: time.Now().UTC(),
	}
}

// DebtPaymentFromEntity creates a PaymentModel for a debt payment.
func DebtPaymentFromEntity(debtID uuid.UUID, payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:        payment.ID,
		DebtID:    &debtID,
		Amount:    payment.Amount,
		PaidAt:    payment.PaidAt,
		Note:      payment.Note,
		CreatedAt: time.Now().UTC(),
	}
}
