// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billwise/backend/internal/application/usecase/bill"
	"github.com/billwise/backend/internal/domain/entity"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/entrypoint/dto"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// BillController handles bill endpoints.
type BillController struct {
	listUseCase          *bill.ListBillsUseCase
	getUseCase           *bill.GetBillUseCase
	createUseCase        *bill.CreateBillUseCase
	updateUseCase        *bill.UpdateBillUseCase
	deactivateUseCase    *bill.DeactivateBillUseCase
	recordPaymentUseCase *bill.RecordPaymentUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listUseCase *bill.ListBillsUseCase,
	getUseCase *bill.GetBillUseCase,
	createUseCase *bill.CreateBillUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	deactivateUseCase *bill.DeactivateBillUseCase,
	recordPaymentUseCase *bill.RecordPaymentUseCase,
) *BillController {
	return &BillController{
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deactivateUseCase:    deactivateUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
	}
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := bill.ListBillsInput{
		UserID:     userID,
		ActiveOnly: true,
	}

	// Parse category filter
	if categoryIDStr := ctx.Query("categoryId"); categoryIDStr != "" {
		if id, err := uuid.Parse(categoryIDStr); err == nil {
			input.CategoryID = &id
		}
	}

	// Parse status filter
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.BillStatus(statusStr)
		input.Status = &status
	}

	// Include inactive bills when requested
	if ctx.Query("includeInactive") == "true" {
		input.ActiveOnly = false
	}

	// Parse reference date override
	if asOfStr := ctx.Query("asOf"); asOfStr != "" {
		if asOf, err := time.Parse("2006-01-02", asOfStr); err == nil {
			input.AsOf = asOf
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output))
}

// Get handles GET /bills/:id requests.
func (c *BillController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	input := bill.GetBillInput{
		BillID: billID,
		UserID: userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillWithStatusResponse(output.Bill))
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		categoryID = &id
	}

	// Reminders default to on unless explicitly disabled
	notifyEnabled := true
	if req.NotifyEnabled != nil {
		notifyEnabled = *req.NotifyEnabled
	}

	input := bill.CreateBillInput{
		UserID:             userID,
		Name:               req.Name,
		EstimatedAmount:    decimal.NewFromFloat(req.EstimatedAmount),
		DueDate:            dueDate,
		RepeatCycle:        entity.RepeatCycle(req.RepeatCycle),
		CustomIntervalDays: req.CustomIntervalDays,
		CategoryID:         categoryID,
		Notes:              req.Notes,
		AutoPay:            req.AutoPay,
		NotifyEnabled:      notifyEnabled,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// Update handles PATCH /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := bill.UpdateBillInput{
		BillID:        billID,
		UserID:        userID,
		Name:          req.Name,
		ClearCategory: req.ClearCategory,
		Notes:         req.Notes,
		IsActive:      req.IsActive,
		AutoPay:       req.AutoPay,
		NotifyEnabled: req.NotifyEnabled,
	}

	if req.EstimatedAmount != nil {
		amount := decimal.NewFromFloat(*req.EstimatedAmount)
		input.EstimatedAmount = &amount
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	if req.RepeatCycle != nil {
		cycle := entity.RepeatCycle(*req.RepeatCycle)
		input.RepeatCycle = &cycle
	}

	if req.CustomIntervalDays != nil {
		input.CustomIntervalDays = req.CustomIntervalDays
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &id
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Deactivate handles DELETE /bills/:id requests. The bill is removed from
// all views but its payment history is retained.
func (c *BillController) Deactivate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	input := bill.DeactivateBillInput{
		BillID: billID,
		UserID: userID,
	}

	_, err = c.deactivateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RecordPayment handles POST /bills/:id/payments requests.
func (c *BillController) RecordPayment(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	var req dto.RecordBillPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	input := bill.RecordPaymentInput{
		BillID: billID,
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
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordBillPaymentResponse{
		Bill:    dto.ToBillResponse(output.Bill),
		Payment: dto.ToPaymentResponse(output.Payment),
		NextDue: output.NextDue.Format("2006-01-02"),
	})
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		statusCode := c.getStatusCodeForBillError(billErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *BillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound,
		domainerror.ErrCodeBillCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedBillAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeBillNameRequired,
		domainerror.ErrCodeInvalidBillAmount,
		domainerror.ErrCodeInvalidRepeatCycle,
		domainerror.ErrCodeCustomIntervalRequired,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeMissingBillFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeBillInactive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
