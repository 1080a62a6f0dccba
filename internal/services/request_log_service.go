package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
)

var ErrInvalidRequestLog = errors.New("invalid request log")

type requestLogService struct {
	repo repositories.RequestLogRepositoryInterface
}

func NewRequestLogService(repo repositories.RequestLogRepositoryInterface) RequestLogServiceInterface {
	return &requestLogService{repo: repo}
}

// ValidateLogLevel validates that the level is one of the allowed levels
func ValidateLogLevel(level string) error {
	switch level {
	case models.LogLevelInfo, models.LogLevelWarn, models.LogLevelError:
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

func (s *requestLogService) Record(ctx context.Context, entry *models.RequestLog) error {
	if entry == nil {
		return ErrInvalidRequestLog
	}

	if err := ValidateLogLevel(entry.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestLog, err)
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}
	return nil
}

// List returns request log entries newest first
func (s *requestLogService) List(ctx context.Context, offset, limit int) ([]*models.RequestLog, int64, error) {
	logs, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		slog.Error("failed to list request logs", "offset", offset, "limit", limit, "error", err)
		return nil, 0, fmt.Errorf("failed to list request logs: %w: %w", ErrStorageUnavailable, err)
	}
	return logs, total, nil
}
