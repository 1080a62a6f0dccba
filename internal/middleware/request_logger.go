package middleware

import (
	"context"
	"log/slog"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const requestLogTimeout = 2 * time.Second

// RequestLogger writes one request_logs row per handled request. Paths in skip
// (health checks, metrics scrapes) are not recorded. Failing to record never
// fails the request.
func RequestLogger(logs services.RequestLogServiceInterface, service string, logger *slog.Logger, skip ...string) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipped[c.Path()] {
				return next(c)
			}

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			entry := models.NewRequestLog(service, req.Method, req.URL.RequestURI(), status, GetTraceID(c))

			ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), requestLogTimeout)
			defer cancel()

			if err := logs.Record(ctx, entry); err != nil {
				logger.Warn("failed to record request",
					"method", req.Method,
					"url", entry.URL,
					"error", err)
			}

			logger.Info("request handled",
				"method", req.Method,
				"url", entry.URL,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"trace_id", entry.TraceID)

			return nil
		}
	}
}
