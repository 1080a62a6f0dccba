package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker/internal/models"

	"gorm.io/gorm"
)

// RequestLogRepository handles database operations for request logs
type RequestLogRepository struct {
	db *gorm.DB
}

func NewRequestLogRepository(db *gorm.DB) RequestLogRepositoryInterface {
	return &RequestLogRepository{
		db: db,
	}
}

func (r *RequestLogRepository) Create(ctx context.Context, log *models.RequestLog) error {
	if log == nil {
		return errors.New("request log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create request log: %w", err)
	}

	return nil
}

// List returns request logs newest first
func (r *RequestLogRepository) List(ctx context.Context, offset, limit int) ([]*models.RequestLog, int64, error) {
	offset, limit = normalizePagination(offset, limit)

	var logs []*models.RequestLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.RequestLog{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count request logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list request logs: %w", err)
	}

	return logs, total, nil
}
