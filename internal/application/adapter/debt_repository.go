// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/domain/entity"
)

// DebtFilter holds optional filters for listing debts.
type DebtFilter struct {
	UserID         uuid.UUID
	Type           *entity.DebtType
	IncludeSettled bool
}

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID, including its payment history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByFilter retrieves debts matching the filter, ordered by creation date.
	FindByFilter(ctx context.Context, filter DebtFilter) ([]*entity.Debt, error)

	// Update updates an existing debt in the database.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// AddPayment appends an immutable payment record to a debt.
	AddPayment(ctx context.Context, debtID uuid.UUID, payment *entity.Payment) error
}
