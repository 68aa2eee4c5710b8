// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUserID retrieves all categories for a given user, ordered by name.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByUserAndName checks if a category with the given name exists for the user.
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}
