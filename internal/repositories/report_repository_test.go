package repositories

import (
	"context"
	"sync"
	"testing"

	"expense-tracker/internal/database"
	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestReportRepository(t *testing.T) {
	suite.Run(t, new(ReportRepositorySuite))
}

type ReportRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ReportRepositoryInterface
	ctx  context.Context
}

func (s *ReportRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReportRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *ReportRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReportRepositorySuite) report(userID int64, year, month int, foodSum string) *models.Report {
	costs := models.ReportCosts{}
	for _, c := range models.Taxonomy() {
		items := []models.CostItem{}
		if c == models.CategoryFood {
			items = append(items, models.CostItem{Sum: decimal.RequireFromString(foodSum), Description: "Lunch", Day: 10})
		}
		costs = append(costs, models.CategoryCosts{Category: c, Items: items})
	}
	return &models.Report{UserID: userID, Year: year, Month: month, Costs: costs}
}

func (s *ReportRepositorySuite) TestGet_Miss() {
	_, err := s.repo.Get(s.ctx, 1, 2024, 1)

	s.ErrorIs(err, ErrReportNotFound)
}

func (s *ReportRepositorySuite) TestPutThenGet_RoundTrip() {
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 1, "25")))

	stored, err := s.repo.Get(s.ctx, 1, 2024, 1)

	s.Require().NoError(err)
	s.True(stored.Costs.MatchesTaxonomy(models.Taxonomy()))
	food := stored.Costs.Items(models.CategoryFood)
	s.Require().Len(food, 1)
	s.Equal("25", food[0].Sum.String())
	s.Equal("Lunch", food[0].Description)
	s.Equal(10, food[0].Day)
	s.NotNil(stored.Costs.Items(models.CategoryHealth))
	s.Empty(stored.Costs.Items(models.CategoryHealth))
}

func (s *ReportRepositorySuite) TestPut_IsWriteOnce() {
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 1, "25")))
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 1, "99")))

	stored, err := s.repo.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)
	s.Equal("25", stored.Costs.Items(models.CategoryFood)[0].Sum.String())

	var count int64
	s.Require().NoError(s.db.Model(&models.Report{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *ReportRepositorySuite) TestPut_ConcurrentWritersConverge() {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.repo.Put(s.ctx, s.report(5, 2023, 12, "10"))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Report{}).Where("user_id = ?", 5).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *ReportRepositorySuite) TestPut_KeysAreIndependent() {
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 1, "1")))
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 2, "2")))
	s.Require().NoError(s.repo.Put(s.ctx, s.report(2, 2024, 1, "3")))

	stored, err := s.repo.Get(s.ctx, 1, 2024, 2)
	s.Require().NoError(err)
	s.Equal("2", stored.Costs.Items(models.CategoryFood)[0].Sum.String())
}

func (s *ReportRepositorySuite) TestDeleteByUserIDs() {
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 1, "1")))
	s.Require().NoError(s.repo.Put(s.ctx, s.report(2, 2024, 1, "2")))
	s.Require().NoError(s.repo.Put(s.ctx, s.report(3, 2024, 1, "3")))

	deleted, err := s.repo.DeleteByUserIDs(s.ctx, []int64{1, 2})
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	_, err = s.repo.Get(s.ctx, 1, 2024, 1)
	s.ErrorIs(err, ErrReportNotFound)
	_, err = s.repo.Get(s.ctx, 3, 2024, 1)
	s.NoError(err)

	deleted, err = s.repo.DeleteByUserIDs(s.ctx, nil)
	s.NoError(err)
	s.Zero(deleted)
}

func (s *ReportRepositorySuite) TestDeleteAll() {
	s.Require().NoError(s.repo.Put(s.ctx, s.report(1, 2024, 1, "1")))
	s.Require().NoError(s.repo.Put(s.ctx, s.report(2, 2024, 1, "2")))

	deleted, err := s.repo.DeleteAll(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(2), deleted)
}
