// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/billwise/backend/internal/application/usecase/calendar"
	domainerror "github.com/billwise/backend/internal/domain/error"
	"github.com/billwise/backend/internal/domain/valueobject"
	"github.com/billwise/backend/internal/integration/entrypoint/dto"
	"github.com/billwise/backend/internal/integration/entrypoint/middleware"
)

// CalendarController handles the month view endpoint.
type CalendarController struct {
	getMonthUseCase *calendar.GetMonthUseCase
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(getMonthUseCase *calendar.GetMonthUseCase) *CalendarController {
	return &CalendarController{
		getMonthUseCase: getMonthUseCase,
	}
}

// GetMonth handles GET /calendar/:year/:month requests.
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
		})
		return
	}

	monthNum, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month. Use a value between 1 and 12",
		})
		return
	}

	input := calendar.GetMonthInput{
		UserID: userID,
		Month:  valueobject.NewMonth(year, time.Month(monthNum)),
	}

	// Parse reference date override
	if asOfStr := ctx.Query("asOf"); asOfStr != "" {
		if asOf, err := time.Parse("2006-01-02", asOfStr); err == nil {
			input.AsOf = asOf
		}
	}

	output, err := c.getMonthUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build calendar view",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarMonthResponse(output))
}
