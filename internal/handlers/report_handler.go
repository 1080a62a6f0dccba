package handlers

import (
	stderrors "errors"
	"net/http"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves monthly spending reports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport returns one user's costs for a calendar month grouped by category
// @Summary Monthly report
// @Description Costs of a user for a month, one entry per category in fixed order
// @Tags Reports
// @Produce json
// @Param id query int true "User ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} models.MonthlyReport
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/report [get]
func (h *ReportHandler) GetMonthlyReport(c echo.Context) error {
	query, err := services.ParseReportQuery(c.QueryParam("id"), c.QueryParam("year"), c.QueryParam("month"))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	report, err := h.reportService.GetMonthlyReport(c.Request().Context(), query.UserID, query.Year, query.Month)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidArgument):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, report)
}
