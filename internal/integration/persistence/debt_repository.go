package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Create(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID, including its payment history.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).
		Preload("Payments").
		Where("id = ?", id).
		First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByFilter retrieves debts matching the filter, ordered by creation date.
func (r *debtRepository) FindByFilter(ctx context.Context, filter adapter.DebtFilter) ([]*entity.Debt, error) {
	query := r.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if !filter.IncludeSettled {
		query = query.Where("is_settled = ?", false)
	}

	var debtModels []*model.DebtModel
	result := query.Order("created_at DESC").Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, 0, len(debtModels))
	for _, m := range debtModels {
		debts = append(debts, m.ToEntity())
	}
	return debts, nil
}

// Update updates an existing debt in the database.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Save(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a debt from the database (soft delete).
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AddPayment appends an immutable payment record to a debt.
func (r *debtRepository) AddPayment(ctx context.Context, debtID uuid.UUID, payment *entity.Payment) error {
	paymentModel := model.DebtPaymentFromEntity(debtID, payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
