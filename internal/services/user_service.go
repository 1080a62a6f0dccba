package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type userService struct {
	users   repositories.UserRepositoryInterface
	costs   repositories.CostRepositoryInterface
	metrics MetricsRecorderInterface
}

func NewUserService(users repositories.UserRepositoryInterface, costs repositories.CostRepositoryInterface, metrics MetricsRecorderInterface) UserServiceInterface {
	return &userService{
		users:   users,
		costs:   costs,
		metrics: metrics,
	}
}

func (s *userService) CreateUser(ctx context.Context, req *dto.AddUserRequest) (*models.User, error) {
	birthday, err := models.ParseBirthday(req.Birthday)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	user := &models.User{
		UserID:    req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  birthday,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		slog.Error("failed to create user", "user_id", req.ID, "error", err)
		return nil, fmt.Errorf("failed to create user: %w: %w", ErrStorageUnavailable, err)
	}

	slog.Info("user created", "user_id", user.UserID)
	if s.metrics != nil {
		s.metrics.IncrementCounter("user_created", nil)
	}
	return user, nil
}

// GetUser returns the user together with the sum of all of their costs.
// The lookup and the total run concurrently.
func (s *userService) GetUser(ctx context.Context, userID int64) (*dto.UserDetailsResponse, error) {
	var (
		user  *models.User
		total decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.costs.GetTotalByUserID(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		slog.Error("failed to get user details", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w: %w", ErrStorageUnavailable, err)
	}

	return dto.NewUserDetailsResponse(user, total.String()), nil
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	users, total, err := s.users.List(ctx, offset, limit)
	if err != nil {
		slog.Error("failed to list users", "offset", offset, "limit", limit, "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w: %w", ErrStorageUnavailable, err)
	}
	return users, total, nil
}
