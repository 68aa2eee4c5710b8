package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/persistence/model"
)

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// Create creates a new bill in the database.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bill by its ID, including its payment history.
func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).
		Preload("Payments").
		Where("id = ?", id).
		First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByFilter retrieves bills matching the filter, ordered by due date.
func (r *billRepository) FindByFilter(ctx context.Context, filter adapter.BillFilter) ([]*entity.Bill, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var billModels []*model.BillModel
	result := query.Order("due_date ASC, name ASC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, 0, len(billModels))
	for _, m := range billModels {
		bills = append(bills, m.ToEntity())
	}
	return bills, nil
}

// FindDueWithin retrieves active, notify-enabled bills across all users
// whose due date falls inside [from, to].
func (r *billRepository) FindDueWithin(ctx context.Context, from, to time.Time) ([]*entity.Bill, error) {
	var billModels []*model.BillModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND notify_enabled = ? AND due_date >= ? AND due_date <= ?",
			true, true, from, to).
		Order("user_id, due_date ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, 0, len(billModels))
	for _, m := range billModels {
		bills = append(bills, m.ToEntity())
	}
	return bills, nil
}

// Update updates an existing bill in the database.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a bill from the database (soft delete, history retained).
func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AddPayment appends an immutable payment record to a bill.
func (r *billRepository) AddPayment(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.BillPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountByCategory counts non-deleted bills referencing a category.
func (r *billRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
