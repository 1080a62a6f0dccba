package repositories

import (
	"context"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for the user directory
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByUserID(ctx context.Context, userID int64) (*models.User, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// CostRepositoryInterface defines the contract for the cost record store
type CostRepositoryInterface interface {
	Create(ctx context.Context, cost *models.Cost) error
	CreateBatch(ctx context.Context, costs []models.Cost) error
	// GetByUserAndRange returns the user's costs with occurred_at in [start, end),
	// ordered by occurred_at then insertion
	GetByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error)
	GetTotalByUserID(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// ReportCacheInterface is the write-once store of closed-period monthly reports.
// Get returns ErrReportNotFound on a miss; Put is idempotent per (user, year, month).
type ReportCacheInterface interface {
	Get(ctx context.Context, userID int64, year, month int) (*models.Report, error)
	Put(ctx context.Context, report *models.Report) error
}

// ReportRepositoryInterface adds the administrative operations of the durable report store
type ReportRepositoryInterface interface {
	ReportCacheInterface
	DeleteByUserIDs(ctx context.Context, userIDs []int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// RequestLogRepositoryInterface defines the contract for the request log
type RequestLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.RequestLog) error
	List(ctx context.Context, offset, limit int) ([]*models.RequestLog, int64, error)
}
