package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const costBatchSize = 200

type costRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) CostRepositoryInterface {
	return &costRepository{db: db}
}

func (r *costRepository) Create(ctx context.Context, cost *models.Cost) error {
	if cost == nil {
		return errors.New("cost cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(cost).Error; err != nil {
		return fmt.Errorf("failed to create cost: %w", err)
	}

	return nil
}

func (r *costRepository) CreateBatch(ctx context.Context, costs []models.Cost) error {
	if len(costs) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(costs, costBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create costs batch: %w", err)
	}

	return nil
}

func (r *costRepository) GetByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error) {
	var costs []models.Cost

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start.UTC(), end.UTC()).
		Order("occurred_at ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&costs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get costs by range: %w", err)
	}

	return costs, nil
}

func (r *costRepository) GetTotalByUserID(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var total decimal.Decimal

	row := r.db.WithContext(ctx).Model(&models.Cost{}).
		Select("COALESCE(SUM(sum), 0)").
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get cost total: %w", err)
	}

	return total.Round(2), nil
}
