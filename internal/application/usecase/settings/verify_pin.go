package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// VerifyPinInput represents the input for app-lock PIN verification.
type VerifyPinInput struct {
	UserID uuid.UUID
	Pin    string
}

// VerifyPinOutput represents the output of app-lock PIN verification.
type VerifyPinOutput struct {
	Valid bool
}

// VerifyPinUseCase handles app-lock PIN verification.
type VerifyPinUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewVerifyPinUseCase creates a new VerifyPinUseCase instance.
func NewVerifyPinUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *VerifyPinUseCase {
	return &VerifyPinUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute verifies the PIN against the stored hash.
func (uc *VerifyPinUseCase) Execute(ctx context.Context, input VerifyPinInput) (*VerifyPinOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if user.PinHash == nil || !user.PinEnabled {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodePinNotSet,
			"PIN is not configured",
			domainerror.ErrPinNotSet,
		)
	}

	if err := uc.passwordService.VerifyPassword(*user.PinHash, input.Pin); err != nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodePinMismatch,
			"incorrect PIN",
			domainerror.ErrPinMismatch,
		)
	}

	return &VerifyPinOutput{
		Valid: true,
	}, nil
}
