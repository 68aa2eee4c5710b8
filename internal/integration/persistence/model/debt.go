package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/billwise/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Counterparty string          `gorm:"type:varchar(100);not null"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate      *time.Time      `gorm:"type:date"`
	Notes        string          `gorm:"type:text"`
	IsSettled    bool            `gorm:"default:false;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User     *UserModel      `gorm:"foreignKey:UserID;references:ID"`
	Payments []*PaymentModel `gorm:"foreignKey:DebtID;references:ID"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	debt := &entity.Debt{
		ID:           m.ID,
		UserID:       m.UserID,
		Counterparty: m.Counterparty,
		Type:         entity.DebtType(m.Type),
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		DueDate:      m.DueDate,
		Notes:        m.Notes,
		IsSettled:    m.IsSettled,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}

	for _, p := range m.Payments {
		debt.Payments = append(debt.Payments, p.ToEntity())
	}

	return debt
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	var deletedAt gorm.DeletedAt
	if debt.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *debt.DeletedAt, Valid: true}
	}

	return &DebtModel{
		ID:           debt.ID,
		UserID:       debt.UserID,
		Counterparty: debt.Counterparty,
		Type:         string(debt.Type),
		TotalAmount:  debt.TotalAmount,
		PaidAmount:   debt.PaidAmount,
		DueDate:      debt.DueDate,
		Notes:        debt.Notes,
		IsSettled:    debt.IsSettled,
		CreatedAt:    debt.CreatedAt,
		UpdatedAt:    debt.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
