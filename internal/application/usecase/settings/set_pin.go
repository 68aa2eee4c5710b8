package settings

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// pinRegex matches 4 to 6 digit PINs.
var pinRegex = regexp.MustCompile(`^[0-9]{4,6}$`)

// SetPinInput represents the input for configuring the app-lock PIN.
type SetPinInput struct {
	UserID     uuid.UUID
	Pin        string
	CurrentPin string // Required when a PIN is already configured
}

// SetPinOutput represents the output of configuring the app-lock PIN.
type SetPinOutput struct {
	Success bool
}

// SetPinUseCase handles configuring or replacing the app-lock PIN.
type SetPinUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewSetPinUseCase creates a new SetPinUseCase instance.
func NewSetPinUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *SetPinUseCase {
	return &SetPinUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute sets the PIN. Replacing an existing PIN requires verifying the
// current one first.
func (uc *SetPinUseCase) Execute(ctx context.Context, input SetPinInput) (*SetPinOutput, error) {
	if !pinRegex.MatchString(input.Pin) {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidPin,
			"PIN must be 4 to 6 digits",
			domainerror.ErrInvalidPin,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if user.PinHash != nil {
		if err := uc.passwordService.VerifyPassword(*user.PinHash, input.CurrentPin); err != nil {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodePinMismatch,
				"incorrect PIN",
				domainerror.ErrPinMismatch,
			)
		}
	}

	pinHash, err := uc.passwordService.HashPassword(input.Pin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	user.PinHash = &pinHash
	user.PinEnabled = true
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save PIN: %w", err)
	}

	return &SetPinOutput{
		Success: true,
	}, nil
}
