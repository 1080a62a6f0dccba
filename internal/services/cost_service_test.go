package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories/repository_mocks"
	"expense-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CostServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUsers     *repository_mocks.MockUserRepositoryInterface
	mockCosts     *repository_mocks.MockCostRepositoryInterface
	mockPublisher *service_mocks.MockCostEventPublisherInterface
	mockBreaker   *service_mocks.MockCircuitBreakerInterface
	mockMetrics   *service_mocks.MockMetricsRecorderInterface
	now           time.Time
	service       CostServiceInterface
	ctx           context.Context
}

func TestCostServiceSuite(t *testing.T) {
	suite.Run(t, new(CostServiceTestSuite))
}

func (s *CostServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.mockCosts = repository_mocks.NewMockCostRepositoryInterface(s.ctrl)
	s.mockPublisher = service_mocks.NewMockCostEventPublisherInterface(s.ctrl)
	s.mockBreaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s.service = NewCostService(s.mockUsers, s.mockCosts, s.mockPublisher, s.mockBreaker, s.mockMetrics, FixedClock(s.now))
	s.ctx = context.Background()
}

func (s *CostServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CostServiceTestSuite) newRequest() *dto.AddCostRequest {
	sum := decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)
	return &dto.AddCostRequest{
		Description: gofakeit.Sentence(3),
		Category:    "food",
		UserID:      1,
		Sum:         &sum,
	}
}

func (s *CostServiceTestSuite) TestAddCost_Success() {
	req := s.newRequest()

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(1)).Return(true, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Cost) error {
		s.Equal(models.CategoryFood, c.Category)
		s.Equal(req.Description, c.Description)
		s.True(c.Sum.Equal(*req.Sum))
		s.Equal(s.now, c.OccurredAt)
		return nil
	})
	s.mockMetrics.EXPECT().IncrementCounter("cost_created", map[string]string{"category": "food"})
	s.mockBreaker.EXPECT().IsOpen().Return(false)
	s.mockPublisher.EXPECT().PublishCostCreated(gomock.Any(), gomock.Any()).Return(nil)
	s.mockBreaker.EXPECT().RecordSuccess()
	s.mockMetrics.EXPECT().IncrementCounter("event_published", map[string]string{"status": "success"})

	cost, err := s.service.AddCost(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(int64(1), cost.UserID)
}

func (s *CostServiceTestSuite) TestAddCost_UsesSuppliedTimestamp() {
	req := s.newRequest()
	req.Category = "Education"
	occurred := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)
	req.CreatedAt = &occurred

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(1)).Return(true, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockBreaker.EXPECT().IsOpen().Return(false)
	s.mockPublisher.EXPECT().PublishCostCreated(gomock.Any(), gomock.Any()).Return(nil)
	s.mockBreaker.EXPECT().RecordSuccess()

	cost, err := s.service.AddCost(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(occurred, cost.OccurredAt)
	s.Equal(models.CategoryEducation, cost.Category)
}

func (s *CostServiceTestSuite) TestAddCost_UnknownUser() {
	req := s.newRequest()
	req.UserID = 42

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(42)).Return(false, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.AddCost(s.ctx, req)

	s.ErrorIs(err, ErrCostUserNotFound)
	s.True(IsCostClientError(err))
}

func (s *CostServiceTestSuite) TestAddCost_InvalidCategory() {
	req := s.newRequest()
	req.Category = "travel"

	_, err := s.service.AddCost(s.ctx, req)

	s.ErrorIs(err, ErrInvalidCost)
}

func (s *CostServiceTestSuite) TestAddCost_NegativeSum() {
	req := s.newRequest()
	negative := decimal.NewFromInt(-5)
	req.Sum = &negative

	_, err := s.service.AddCost(s.ctx, req)

	s.ErrorIs(err, ErrInvalidCost)
}

func (s *CostServiceTestSuite) TestAddCost_StoreFailure() {
	req := s.newRequest()

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(1)).Return(true, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := s.service.AddCost(s.ctx, req)

	s.ErrorIs(err, ErrStorageUnavailable)
	s.False(IsCostClientError(err))
}

func (s *CostServiceTestSuite) TestAddCost_PublishFailureDoesNotFailInsert() {
	req := s.newRequest()

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(1)).Return(true, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMetrics.EXPECT().IncrementCounter("cost_created", gomock.Any())
	s.mockBreaker.EXPECT().IsOpen().Return(false)
	s.mockPublisher.EXPECT().PublishCostCreated(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
	s.mockBreaker.EXPECT().RecordFailure()
	s.mockMetrics.EXPECT().IncrementCounter("event_published", map[string]string{"status": "failed"})

	_, err := s.service.AddCost(s.ctx, req)

	s.NoError(err)
}

func (s *CostServiceTestSuite) TestAddCost_OpenBreakerSkipsPublish() {
	req := s.newRequest()

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(1)).Return(true, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMetrics.EXPECT().IncrementCounter("cost_created", gomock.Any())
	s.mockBreaker.EXPECT().IsOpen().Return(true)
	s.mockPublisher.EXPECT().PublishCostCreated(gomock.Any(), gomock.Any()).Times(0)
	s.mockMetrics.EXPECT().IncrementCounter("event_published", map[string]string{"status": "skipped"})

	_, err := s.service.AddCost(s.ctx, req)

	s.NoError(err)
}

func (s *CostServiceTestSuite) TestAddCost_WithoutPublisher() {
	service := NewCostService(s.mockUsers, s.mockCosts, nil, nil, nil, FixedClock(s.now))

	s.mockUsers.EXPECT().ExistsByUserID(gomock.Any(), int64(1)).Return(true, nil)
	s.mockCosts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.AddCost(s.ctx, s.newRequest())

	s.NoError(err)
}
