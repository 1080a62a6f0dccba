package repositories

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) Get(ctx context.Context, userID int64, year, month int) (*models.Report, error) {
	var report models.Report

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &report, nil
}

// Put inserts the report unless one already exists for its period.
// The first stored row wins; later writes for the same key are no-ops.
func (r *reportRepository) Put(ctx context.Context, report *models.Report) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
			DoNothing: true,
		}).
		Create(report).Error
	if err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	return nil
}

func (r *reportRepository) DeleteByUserIDs(ctx context.Context, userIDs []int64) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Delete(&models.Report{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reports: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *reportRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Report{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reports: %w", result.Error)
	}

	return result.RowsAffected, nil
}
