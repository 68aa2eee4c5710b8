// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/domain/entity"
)

// BillFilter holds optional filters for listing bills.
type BillFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// BillRepository defines the interface for bill persistence operations.
type BillRepository interface {
	// Create creates a new bill in the database.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByID retrieves a bill by its ID, including its payment history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)

	// FindByFilter retrieves bills matching the filter, ordered by due date.
	FindByFilter(ctx context.Context, filter BillFilter) ([]*entity.Bill, error)

	// FindDueWithin retrieves active, notify-enabled bills across all users
	// whose due date falls inside [from, to]. Used by the reminder scheduler.
	FindDueWithin(ctx context.Context, from, to time.Time) ([]*entity.Bill, error)

	// Update updates an existing bill in the database.
	Update(ctx context.Context, bill *entity.Bill) error

	// Delete removes a bill from the database (soft delete, history retained).
	Delete(ctx context.Context, id uuid.UUID) error

	// AddPayment appends an immutable payment record to a bill.
	AddPayment(ctx context.Context, payment *entity.Payment) error

	// CountByCategory counts non-deleted bills referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
