package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// CategoryWithUsage pairs a category with the number of bills referencing it.
type CategoryWithUsage struct {
	Category  *entity.Category
	BillCount int64
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryWithUsage
}

// ListCategoriesUseCase handles listing a user's categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	billRepo     adapter.BillRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	categoryRepo adapter.CategoryRepository,
	billRepo adapter.BillRepository,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		billRepo:     billRepo,
	}
}

// Execute lists the user's categories with their bill usage counts.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryWithUsage, 0, len(categories)),
	}

	for _, c := range categories {
		count, err := uc.billRepo.CountByCategory(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count bills for category: %w", err)
		}
		output.Categories = append(output.Categories, &CategoryWithUsage{
			Category:  c,
			BillCount: count,
		})
	}

	return output, nil
}
