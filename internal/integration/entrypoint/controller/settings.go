// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/billwise/backend/internal/application/usecase/settings"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/entrypoint/dto"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles user preference and app-lock PIN endpoints.
type SettingsController struct {
	getUseCase        *settings.GetSettingsUseCase
	updateUseCase     *settings.UpdateSettingsUseCase
	setPinUseCase     *settings.SetPinUseCase
	verifyPinUseCase  *settings.VerifyPinUseCase
	disablePinUseCase *settings.DisablePinUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	setPinUseCase *settings.SetPinUseCase,
	verifyPinUseCase *settings.VerifyPinUseCase,
	disablePinUseCase *settings.DisablePinUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		setPinUseCase:     setPinUseCase,
		verifyPinUseCase:  verifyPinUseCase,
		disablePinUseCase: disablePinUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := settings.GetSettingsInput{
		UserID: userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := settings.UpdateSettingsInput{
		UserID:         userID,
		Name:           req.Name,
		Theme:          req.Theme,
		Language:       req.Language,
		Currency:       req.Currency,
		DateFormat:     req.DateFormat,
		FirstDayOfWeek: req.FirstDayOfWeek,
		BillReminders:  req.BillReminders,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// SetPin handles PUT /settings/pin requests.
func (c *SettingsController) SetPin(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetPinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPin),
		})
		return
	}

	input := settings.SetPinInput{
		UserID:     userID,
		Pin:        req.Pin,
		CurrentPin: req.CurrentPin,
	}

	_, err := c.setPinUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "PIN configured",
	})
}

// VerifyPin handles POST /settings/pin/verify requests.
func (c *SettingsController) VerifyPin(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.VerifyPinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPin),
		})
		return
	}

	input := settings.VerifyPinInput{
		UserID: userID,
		Pin:    req.Pin,
	}

	output, err := c.verifyPinUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyPinResponse{
		Valid: output.Valid,
	})
}

// DisablePin handles DELETE /settings/pin requests.
func (c *SettingsController) DisablePin(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DisablePinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPin),
		})
		return
	}

	input := settings.DisablePinInput{
		UserID: userID,
		Pin:    req.Pin,
	}

	_, err := c.disablePinUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "PIN removed",
	})
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		statusCode := c.getStatusCodeForSettingsError(settingsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func (c *SettingsController) getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTheme,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidFirstDayOfWeek,
		domainerror.ErrCodeInvalidCurrency,
		domainerror.ErrCodeInvalidPin:
		return http.StatusBadRequest
	case domainerror.ErrCodePinNotSet:
		return http.StatusConflict
	case domainerror.ErrCodePinMismatch:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
