// Package settings contains user preference and app-lock PIN use cases.
package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// GetSettingsInput represents the input for fetching user settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of fetching user settings.
type GetSettingsOutput struct {
	User *entity.User
}

// GetSettingsUseCase handles fetching user settings.
type GetSettingsUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(userRepo adapter.UserRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the user's profile and preferences.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	return &GetSettingsOutput{
		User: user,
	}, nil
}
