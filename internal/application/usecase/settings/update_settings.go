package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for updating user preferences.
// Nil fields are left untouched.
type UpdateSettingsInput struct {
	UserID         uuid.UUID
	Name           *string
	Theme          *string
	Language       *string
	Currency       *string
	DateFormat     *string
	FirstDayOfWeek *string
	BillReminders  *bool
}

// UpdateSettingsOutput represents the output of updating user preferences.
type UpdateSettingsOutput struct {
	User *entity.User
}

// UpdateSettingsUseCase handles updating user preferences.
type UpdateSettingsUseCase struct {
	userRepo adapter.UserRepository
	cache    adapter.CalendarCache
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(
	userRepo adapter.UserRepository,
	cache adapter.CalendarCache,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		userRepo: userRepo,
		cache:    cache,
	}
}

// Execute applies the partial preference update. Changing the first day of
// the week invalidates cached calendar months, which embed the grid layout.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	weekStartChanged := false

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			user.Name = name
		}
	}

	if input.Theme != nil {
		theme := entity.Theme(*input.Theme)
		switch theme {
		case entity.ThemeLight, entity.ThemeDark, entity.ThemeSystem:
			user.Theme = theme
		default:
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidTheme,
				fmt.Sprintf("theme must be 'light', 'dark' or 'system', got %q", *input.Theme),
				domainerror.ErrInvalidTheme,
			)
		}
	}

	if input.Language != nil {
		user.Language = *input.Language
	}

	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if len(currency) != 3 {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidCurrency,
				"currency must be a three-letter ISO 4217 code",
				domainerror.ErrInvalidCurrency,
			)
		}
		user.Currency = currency
	}

	if input.DateFormat != nil {
		format := entity.DateFormat(*input.DateFormat)
		switch format {
		case entity.DateFormatDMY, entity.DateFormatMDY, entity.DateFormatYMD:
			user.DateFormat = format
		default:
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidDateFormat,
				fmt.Sprintf("unsupported date format %q", *input.DateFormat),
				domainerror.ErrInvalidDateFormat,
			)
		}
	}

	if input.FirstDayOfWeek != nil {
		fdow := entity.FirstDayOfWeek(*input.FirstDayOfWeek)
		switch fdow {
		case entity.FirstDayOfWeekSunday, entity.FirstDayOfWeekMonday:
			if fdow != user.FirstDayOfWeek {
				weekStartChanged = true
			}
			user.FirstDayOfWeek = fdow
		default:
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidFirstDayOfWeek,
				fmt.Sprintf("first day of week must be 'sunday' or 'monday', got %q", *input.FirstDayOfWeek),
				domainerror.ErrInvalidFirstDayOfWeek,
			)
		}
	}

	if input.BillReminders != nil {
		user.BillReminders = *input.BillReminders
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user settings: %w", err)
	}

	if weekStartChanged {
		if err := uc.cache.InvalidateUser(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to invalidate calendar cache: %w", err)
		}
	}

	return &UpdateSettingsOutput{
		User: user,
	}, nil
}
