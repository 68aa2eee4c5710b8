package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// DisablePinInput represents the input for removing the app-lock PIN.
type DisablePinInput struct {
	UserID uuid.UUID
	Pin    string
}

// DisablePinOutput represents the output of removing the app-lock PIN.
type DisablePinOutput struct {
	Success bool
}

// DisablePinUseCase handles removing the app-lock PIN.
type DisablePinUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewDisablePinUseCase creates a new DisablePinUseCase instance.
func NewDisablePinUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *DisablePinUseCase {
	return &DisablePinUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute removes the PIN after verifying the current one.
func (uc *DisablePinUseCase) Execute(ctx context.Context, input DisablePinInput) (*DisablePinOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if user.PinHash == nil {
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

	user.PinHash = nil
	user.PinEnabled = false
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to disable PIN: %w", err)
	}

	return &DisablePinOutput{
		Success: true,
	}, nil
}
