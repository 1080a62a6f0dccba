package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
)

type costService struct {
	users     repositories.UserRepositoryInterface
	costs     repositories.CostRepositoryInterface
	publisher CostEventPublisherInterface
	breaker   CircuitBreakerInterface
	metrics   MetricsRecorderInterface
	clock     Clock
}

// NewCostService creates the cost ingestion service. publisher and breaker may be nil.
func NewCostService(
	users repositories.UserRepositoryInterface,
	costs repositories.CostRepositoryInterface,
	publisher CostEventPublisherInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
) CostServiceInterface {
	if clock == nil {
		clock = SystemClock{}
	}
	return &costService{
		users:     users,
		costs:     costs,
		publisher: publisher,
		breaker:   breaker,
		metrics:   metrics,
		clock:     clock,
	}
}

func (s *costService) AddCost(ctx context.Context, req *dto.AddCostRequest) (*models.Cost, error) {
	if req == nil || req.Sum == nil {
		return nil, fmt.Errorf("%w: sum is required", ErrInvalidCost)
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}

	if req.Sum.IsNegative() {
		return nil, fmt.Errorf("%w: sum cannot be negative", ErrInvalidCost)
	}

	exists, err := s.users.ExistsByUserID(ctx, req.UserID)
	if err != nil {
		slog.Error("failed to look up user for cost", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w: %w", ErrStorageUnavailable, err)
	}
	if !exists {
		return nil, ErrCostUserNotFound
	}

	occurredAt := s.clock.Now()
	if ts := req.Timestamp(); ts != nil {
		occurredAt = *ts
	}

	cost := &models.Cost{
		Description: req.Description,
		Category:    category,
		UserID:      req.UserID,
		Sum:         *req.Sum,
		OccurredAt:  occurredAt,
	}

	if err := cost.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}

	if err := s.costs.Create(ctx, cost); err != nil {
		slog.Error("failed to create cost", "user_id", req.UserID, "category", category, "error", err)
		return nil, fmt.Errorf("failed to create cost: %w: %w", ErrStorageUnavailable, err)
	}

	slog.Info("cost created", "cost_id", cost.ID, "user_id", cost.UserID, "category", category)
	if s.metrics != nil {
		s.metrics.IncrementCounter("cost_created", map[string]string{"category": string(category)})
	}

	s.publish(ctx, cost)

	return cost, nil
}

// publish announces the cost on a best effort basis
func (s *costService) publish(ctx context.Context, cost *models.Cost) {
	if s.publisher == nil {
		return
	}

	if s.breaker != nil && s.breaker.IsOpen() {
		s.countEvent("skipped")
		return
	}

	err := s.publisher.PublishCostCreated(ctx, cost)
	if err != nil {
		slog.Warn("failed to publish cost event", "cost_id", cost.ID, "error", err)
		if s.breaker != nil {
			s.breaker.RecordFailure()
		}
		s.countEvent("failed")
		return
	}

	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
	s.countEvent("success")
}

func (s *costService) countEvent(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("event_published", map[string]string{"status": status})
}

// IsCostClientError reports whether err is caused by the request rather than the system
func IsCostClientError(err error) bool {
	return errors.Is(err, ErrInvalidCost) || errors.Is(err, ErrCostUserNotFound)
}
