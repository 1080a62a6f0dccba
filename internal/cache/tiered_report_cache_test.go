package cache

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type TieredReportCacheTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *repository_mocks.MockReportCacheInterface
	cache *TieredReportCache
	ctx   context.Context
}

func (s *TieredReportCacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = repository_mocks.NewMockReportCacheInterface(s.ctrl)
	s.cache = NewTieredReportCache(s.store, time.Minute)
	s.ctx = context.Background()
}

func (s *TieredReportCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTieredReportCacheSuite(t *testing.T) {
	suite.Run(t, new(TieredReportCacheTestSuite))
}

func (s *TieredReportCacheTestSuite) TestGet_StoreHitIsServedFromMemoryAfterwards() {
	report := &models.Report{UserID: 1, Year: 2024, Month: 1}

	s.store.EXPECT().Get(gomock.Any(), int64(1), 2024, 1).Return(report, nil).Times(1)

	first, err := s.cache.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)
	s.Same(report, first)

	second, err := s.cache.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)
	s.Same(report, second)
	s.Equal(1, s.cache.ItemCount())
}

func (s *TieredReportCacheTestSuite) TestGet_MissIsNotRemembered() {
	s.store.EXPECT().Get(gomock.Any(), int64(1), 2024, 2).Return(nil, repositories.ErrReportNotFound).Times(2)

	_, err := s.cache.Get(s.ctx, 1, 2024, 2)
	s.ErrorIs(err, repositories.ErrReportNotFound)

	_, err = s.cache.Get(s.ctx, 1, 2024, 2)
	s.ErrorIs(err, repositories.ErrReportNotFound)
	s.Zero(s.cache.ItemCount())
}

func (s *TieredReportCacheTestSuite) TestGet_StoreErrorPropagates() {
	storeErr := errors.New("connection reset")
	s.store.EXPECT().Get(gomock.Any(), int64(3), 2023, 12).Return(nil, storeErr)

	_, err := s.cache.Get(s.ctx, 3, 2023, 12)
	s.ErrorIs(err, storeErr)
}

func (s *TieredReportCacheTestSuite) TestPut_WritesThroughWithoutFillingMemory() {
	report := &models.Report{UserID: 2, Year: 2024, Month: 2}
	s.store.EXPECT().Put(gomock.Any(), report).Return(nil)

	s.Require().NoError(s.cache.Put(s.ctx, report))
	s.Zero(s.cache.ItemCount())
}

func (s *TieredReportCacheTestSuite) TestFlush_ForcesStoreRead() {
	report := &models.Report{UserID: 1, Year: 2024, Month: 1}
	s.store.EXPECT().Get(gomock.Any(), int64(1), 2024, 1).Return(report, nil).Times(2)

	_, err := s.cache.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)

	s.cache.Flush()

	_, err = s.cache.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)
}

func (s *TieredReportCacheTestSuite) TestKeysDistinguishPeriods() {
	s.NotEqual(reportKey(1, 2024, 1), reportKey(12, 24, 1))
	s.Equal("7:2024:03", reportKey(7, 2024, 3))
}

func (s *TieredReportCacheTestSuite) TestFlushOn_DeletedReportStopsBeingServed() {
	report := &models.Report{UserID: 1, Year: 2024, Month: 1}
	gomock.InOrder(
		s.store.EXPECT().Get(gomock.Any(), int64(1), 2024, 1).Return(report, nil),
		s.store.EXPECT().Get(gomock.Any(), int64(1), 2024, 1).Return(nil, repositories.ErrReportNotFound),
	)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	signals := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		s.cache.FlushOn(ctx, signals)
		close(done)
	}()

	_, err := s.cache.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)

	// another process deleted the row; memory still answers
	cached, err := s.cache.Get(s.ctx, 1, 2024, 1)
	s.Require().NoError(err)
	s.Same(report, cached)

	signals <- syscall.SIGHUP
	s.Eventually(func() bool { return s.cache.ItemCount() == 0 }, time.Second, 5*time.Millisecond)

	_, err = s.cache.Get(s.ctx, 1, 2024, 1)
	s.ErrorIs(err, repositories.ErrReportNotFound)

	cancel()
	<-done
}

func (s *TieredReportCacheTestSuite) TestGet_DeletedReportExpiresWithTTL() {
	s.cache = NewTieredReportCache(s.store, 30*time.Millisecond)
	report := &models.Report{UserID: 2, Year: 2023, Month: 7}
	gomock.InOrder(
		s.store.EXPECT().Get(gomock.Any(), int64(2), 2023, 7).Return(report, nil),
		s.store.EXPECT().Get(gomock.Any(), int64(2), 2023, 7).Return(nil, repositories.ErrReportNotFound),
	)

	_, err := s.cache.Get(s.ctx, 2, 2023, 7)
	s.Require().NoError(err)

	time.Sleep(50 * time.Millisecond)

	_, err = s.cache.Get(s.ctx, 2, 2023, 7)
	s.ErrorIs(err, repositories.ErrReportNotFound)
}
