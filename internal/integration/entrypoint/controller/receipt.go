// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/billwise/backend/internal/application/usecase/receipt"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/entrypoint/dto"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// ReceiptController handles receipt scanning endpoints.
type ReceiptController struct {
	scanUseCase *receipt.ScanReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(scanUseCase *receipt.ScanReceiptUseCase) *ReceiptController {
	return &ReceiptController{
		scanUseCase: scanUseCase,
	}
}

// Scan handles POST /receipts/scan requests.
func (c *ReceiptController) Scan(ctx *gin.Context) {
	_, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ScanReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidReceiptImage),
		})
		return
	}

	input := receipt.ScanReceiptInput{
		ImageBase64: req.ImageBase64,
		MimeType:    req.MimeType,
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScanReceiptResponse(output))
}

// handleReceiptError handles receipt errors and returns appropriate HTTP responses.
func (c *ReceiptController) handleReceiptError(ctx *gin.Context, err error) {
	var receiptErr *domainerror.ReceiptError
	if errors.As(err, &receiptErr) {
		statusCode := c.getStatusCodeForReceiptError(receiptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: receiptErr.Message,
			Code:  string(receiptErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReceiptError maps receipt error codes to HTTP status codes.
func (c *ReceiptController) getStatusCodeForReceiptError(code domainerror.ReceiptErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReceiptImage:
		return http.StatusBadRequest
	case domainerror.ErrCodeReceiptScannerUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeReceiptExtractionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
