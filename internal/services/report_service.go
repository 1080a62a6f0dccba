package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"golang.org/x/sync/singleflight"
)

// sharedComputeTimeout bounds a closed-month computation shared by concurrent callers
const sharedComputeTimeout = 30 * time.Second

// ReportQuery identifies one user's calendar month
type ReportQuery struct {
	UserID int64
	Year   int
	Month  int
}

// ParseReportQuery converts raw query parameters into a ReportQuery.
// Every parameter must be a decimal integer.
func ParseReportQuery(id, year, month string) (ReportQuery, error) {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return ReportQuery{}, fmt.Errorf("%w: id must be an integer", ErrInvalidArgument)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return ReportQuery{}, fmt.Errorf("%w: year must be an integer", ErrInvalidArgument)
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return ReportQuery{}, fmt.Errorf("%w: month must be an integer", ErrInvalidArgument)
	}

	q := ReportQuery{UserID: userID, Year: y, Month: m}
	return q, q.Validate()
}

func (q ReportQuery) Validate() error {
	if q.Month < 1 || q.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidArgument)
	}
	if q.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidArgument)
	}
	return nil
}

// IsClosed reports whether the month ended before now. now must already be in the
// report location.
func (q ReportQuery) IsClosed(now time.Time) bool {
	curYear, curMonth := now.Year(), int(now.Month())
	return q.Year < curYear || (q.Year == curYear && q.Month < curMonth)
}

func (q ReportQuery) key() string {
	return fmt.Sprintf("%d:%d:%d", q.UserID, q.Year, q.Month)
}

type reportService struct {
	users      repositories.UserRepositoryInterface
	costs      repositories.CostRepositoryInterface
	cache      repositories.ReportCacheInterface
	aggregator ReportAggregatorInterface
	metrics    MetricsRecorderInterface
	clock      Clock
	location   *time.Location
	inflight   singleflight.Group
}

// NewReportService creates the report service. Months and days are interpreted in loc.
func NewReportService(
	users repositories.UserRepositoryInterface,
	costs repositories.CostRepositoryInterface,
	cache repositories.ReportCacheInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	loc *time.Location,
) ReportServiceInterface {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &reportService{
		users:      users,
		costs:      costs,
		cache:      cache,
		aggregator: NewReportAggregator(loc),
		metrics:    metrics,
		clock:      clock,
		location:   loc,
	}
}

func (s *reportService) GetMonthlyReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error) {
	q := ReportQuery{UserID: userID, Year: year, Month: month}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByUserID(ctx, userID)
	if err != nil {
		slog.Error("failed to look up user for report", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w: %w", ErrStorageUnavailable, err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if !q.IsClosed(s.clock.Now().In(s.location)) {
		s.countRequest("open", "computed")
		return s.generate(ctx, q)
	}

	cached, err := s.cache.Get(ctx, userID, year, month)
	if err == nil {
		s.countRequest("closed", "hit")
		return cached.ToMonthlyReport(), nil
	}
	if !errors.Is(err, repositories.ErrReportNotFound) {
		slog.Error("failed to read cached report", "user_id", userID, "year", year, "month", month, "error", err)
		return nil, fmt.Errorf("failed to read cached report: %w: %w", ErrStorageUnavailable, err)
	}

	s.countRequest("closed", "miss")

	// identical concurrent misses share one computation. It runs detached from any
	// single caller so one disconnect cannot fail the others.
	ch := s.inflight.DoChan(q.key(), func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedComputeTimeout)
		defer cancel()

		report, err := s.generate(shared, q)
		if err != nil {
			return nil, err
		}
		s.store(shared, report)
		return report, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.MonthlyReport), nil
	}
}

func (s *reportService) generate(ctx context.Context, q ReportQuery) (*models.MonthlyReport, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordProcessingTime("report_generation", time.Since(start))
		}
	}()

	from := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, 0)

	records, err := s.costs.GetByUserAndRange(ctx, q.UserID, from, to)
	if err != nil {
		slog.Error("failed to load costs for report",
			"user_id", q.UserID,
			"year", q.Year,
			"month", q.Month,
			"error", err)
		return nil, fmt.Errorf("failed to load costs: %w: %w", ErrStorageUnavailable, err)
	}

	return &models.MonthlyReport{
		UserID: q.UserID,
		Year:   q.Year,
		Month:  q.Month,
		Costs:  s.aggregator.Aggregate(records, models.Taxonomy()),
	}, nil
}

// store persists a closed-period report. Failures are logged and counted, never returned.
func (s *reportService) store(ctx context.Context, report *models.MonthlyReport) {
	if err := s.cache.Put(ctx, models.NewReport(report)); err != nil {
		slog.Warn("failed to store report",
			"user_id", report.UserID,
			"year", report.Year,
			"month", report.Month,
			"error", err)
		s.countCacheWrite("failed")
		return
	}
	s.countCacheWrite("success")
}

func (s *reportService) countRequest(period, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("report_request", map[string]string{"period": period, "result": result})
}

func (s *reportService) countCacheWrite(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("report_cache_write", map[string]string{"status": status})
}
