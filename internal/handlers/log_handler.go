package handlers

import (
	"net/http"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// LogHandler exposes the request log
type LogHandler struct {
	logService services.RequestLogServiceInterface
}

func NewLogHandler(logService services.RequestLogServiceInterface) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListLogs returns request log entries, newest first
// @Summary List request logs
// @Tags Logs
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} dto.RequestLogListResponse
// @Router /api/logs [get]
func (h *LogHandler) ListLogs(c echo.Context) error {
	offset, limit := getPagination(c)

	logs, total, err := h.logService.List(c.Request().Context(), offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RequestLogListResponse{
		Logs:   logs,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}
