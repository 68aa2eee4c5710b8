// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/billwise/backend/internal/application/usecase/overview"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/integration/entrypoint/dto"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// OverviewController handles the home-screen summary endpoint.
type OverviewController struct {
	getOverviewUseCase *overview.GetOverviewUseCase
}

// NewOverviewController creates a new overview controller instance.
func NewOverviewController(getOverviewUseCase *overview.GetOverviewUseCase) *OverviewController {
	return &OverviewController{
		getOverviewUseCase: getOverviewUseCase,
	}
}

// Get handles GET /overview requests.
func (c *OverviewController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := overview.GetOverviewInput{
		UserID: userID,
	}

	// Parse reference date override
	if asOfStr := ctx.Query("asOf"); asOfStr != "" {
		if asOf, err := time.Parse("2006-01-02", asOfStr); err == nil {
			input.AsOf = asOf
		}
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}
