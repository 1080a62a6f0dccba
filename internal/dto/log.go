package dto

import "expense-tracker/internal/models"

// RequestLogListResponse represents a paginated list of request log entries
type RequestLogListResponse struct {
	Logs   []*models.RequestLog `json:"logs"`
	Total  int64                `json:"total"`
	Offset int                  `json:"offset"`
	Limit  int                  `json:"limit"`
}
