// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/usecase/debt"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/entrypoint/dto"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt and receivable endpoints.
type DebtController struct {
	listUseCase          *debt.ListDebtsUseCase
	getUseCase           *debt.GetDebtUseCase
	createUseCase        *debt.CreateDebtUseCase
	updateUseCase        *debt.UpdateDebtUseCase
	deleteUseCase        *debt.DeleteDebtUseCase
	recordPaymentUseCase *debt.RecordPaymentUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	getUseCase *debt.GetDebtUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	recordPaymentUseCase *debt.RecordPaymentUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := debt.ListDebtsInput{
		UserID: userID,
	}

	// Parse type filter
	if typeStr := ctx.Query("type"); typeStr != "" {
		debtType := entity.DebtType(typeStr)
		input.Type = &debtType
	}

	// Include settled entries when requested
	if ctx.Query("includeSettled") == "true" {
		input.IncludeSettled = true
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve debts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output))
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	input := debt.GetDebtInput{
		DebtID: debtID,
		UserID: userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	input := debt.CreateDebtInput{
		UserID:       userID,
		Counterparty: req.Counterparty,
		Type:         entity.DebtType(req.Type),
		TotalAmount:  decimal.NewFromFloat(req.TotalAmount),
		Notes:        req.Notes,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(&debt.DebtOutput{
		Debt:      output.Debt,
		Remaining: output.Debt.TotalAmount.Sub(output.Debt.PaidAmount),
	}))
}

// Update handles PATCH /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := debt.UpdateDebtInput{
		DebtID:       debtID,
		UserID:       userID,
		Counterparty: req.Counterparty,
		ClearDueDate: req.ClearDueDate,
		Notes:        req.Notes,
	}

	if req.TotalAmount != nil {
		amount := decimal.NewFromFloat(*req.TotalAmount)
		input.TotalAmount = &amount
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	input := debt.DeleteDebtInput{
		DebtID: debtID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RecordPayment handles POST /debts/:id/payments requests.
func (c *DebtController) RecordPayment(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.RecordDebtPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDebtPayment),
		})
		return
	}

	input := debt.RecordPaymentInput{
		DebtID: debtID,
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
		Note:   req.Note,
	}

	if req.PaidAt != nil {
		paidAt, err := time.Parse("2006-01-02", *req.PaidAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaidAt = paidAt
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordDebtPaymentResponse{
		Debt:    dto.ToDebtResponse(output.Debt),
		Payment: dto.ToPaymentResponse(output.Payment),
	})
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		statusCode := c.getStatusCodeForDebtError(debtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedDebtAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeDebtCounterpartyRequired,
		domainerror.ErrCodeInvalidDebtType,
		domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeInvalidDebtPayment,
		domainerror.ErrCodeMissingDebtFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeDebtAlreadySettled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
