// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/report"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles expense report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
	exportUseCase   *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	exportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		exportUseCase:   exportUseCase,
	}
}

// Generate handles GET /reports requests. The period is selected via query
// parameters: period=WEEKLY|MONTHLY|YEARLY plus year and, depending on the
// period, month or week. Missing year/month/week default to the current date.
func (c *ReportController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input, ok := c.parseReportInput(ctx, userID)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToReportResponse(output, input.Month, input.Week)
	ctx.JSON(http.StatusOK, response)
}

// Export handles GET /reports/export requests, returning the report as a PDF
// attachment.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input, ok := c.parseReportInput(ctx, userID)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		UserID: input.UserID,
		Period: input.Period,
		Year:   input.Year,
		Month:  input.Month,
		Week:   input.Week,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// parseReportInput reads the period selector from the query string, writing
// the error response itself when a value is malformed.
func (c *ReportController) parseReportInput(ctx *gin.Context, userID uint) (report.GenerateReportInput, bool) {
	now := time.Now().UTC()
	currentYear, currentWeek := now.ISOWeek()

	period := report.Period(ctx.DefaultQuery("period", string(report.PeriodMonthly)))

	year, ok := c.parseIntQuery(ctx, "year", currentYear)
	if !ok {
		return report.GenerateReportInput{}, false
	}
	month, ok := c.parseIntQuery(ctx, "month", int(now.Month()))
	if !ok {
		return report.GenerateReportInput{}, false
	}
	week, ok := c.parseIntQuery(ctx, "week", currentWeek)
	if !ok {
		return report.GenerateReportInput{}, false
	}

	return report.GenerateReportInput{
		UserID: userID,
		Period: period,
		Year:   year,
		Month:  month,
		Week:   week,
	}, true
}

// parseIntQuery reads an integer query parameter, falling back to def when the
// parameter is absent.
func (c *ReportController) parseIntQuery(ctx *gin.Context, name string, def int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Invalid %s parameter", name),
			Code:  string(domainerror.ErrCodeInvalidReportPeriod),
		})
		return 0, false
	}
	return value, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		statusCode := http.StatusInternalServerError
		if recordErr.Code == domainerror.ErrCodeInvalidReportPeriod {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
