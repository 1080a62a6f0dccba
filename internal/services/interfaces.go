package services

import (
	"context"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
)

// ReportServiceInterface serves monthly reports, caching those of closed periods
type ReportServiceInterface interface {
	GetMonthlyReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error)
}

// ReportAggregatorInterface groups a month's costs into the per-category report shape
type ReportAggregatorInterface interface {
	Aggregate(records []models.Cost, taxonomy []models.Category) models.ReportCosts
}

// CostServiceInterface defines cost ingestion
type CostServiceInterface interface {
	AddCost(ctx context.Context, req *dto.AddCostRequest) (*models.Cost, error)
}

// UserServiceInterface defines user directory operations
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *dto.AddUserRequest) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*dto.UserDetailsResponse, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// RequestLogServiceInterface defines the request log operations
type RequestLogServiceInterface interface {
	Record(ctx context.Context, entry *models.RequestLog) error
	List(ctx context.Context, offset, limit int) ([]*models.RequestLog, int64, error)
}

// CostGeneratorInterface produces random costs for seeding
type CostGeneratorInterface interface {
	GenerateCost(userID int64, month time.Time) models.Cost
	GenerateCosts(userIDs []int64, count int, month time.Time) []models.Cost
}

// CostEventPublisherInterface announces stored costs to other systems
type CostEventPublisherInterface interface {
	PublishCostCreated(ctx context.Context, cost *models.Cost) error
}

// MetricsRecorderInterface defines metrics recording
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface defines circuit breaker operations
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}
