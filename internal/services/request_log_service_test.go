package services

import (
	"context"
	"errors"
	"testing"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type RequestLogServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockRequestLogRepositoryInterface
	service  RequestLogServiceInterface
	ctx      context.Context
}

func TestRequestLogServiceSuite(t *testing.T) {
	suite.Run(t, new(RequestLogServiceTestSuite))
}

func (s *RequestLogServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockRequestLogRepositoryInterface(s.ctrl)
	s.service = NewRequestLogService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *RequestLogServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RequestLogServiceTestSuite) TestValidateLogLevel() {
	s.NoError(ValidateLogLevel(models.LogLevelInfo))
	s.NoError(ValidateLogLevel(models.LogLevelWarn))
	s.NoError(ValidateLogLevel(models.LogLevelError))
	s.Error(ValidateLogLevel("debug"))
	s.Error(ValidateLogLevel(""))
}

func (s *RequestLogServiceTestSuite) TestRecord() {
	entry := models.NewRequestLog("expense-tracker", "GET", "/api/report?id=1", 200, "trace-1")
	s.mockRepo.EXPECT().Create(gomock.Any(), entry).Return(nil)

	s.NoError(s.service.Record(s.ctx, entry))
}

func (s *RequestLogServiceTestSuite) TestRecord_Nil() {
	s.ErrorIs(s.service.Record(s.ctx, nil), ErrInvalidRequestLog)
}

func (s *RequestLogServiceTestSuite) TestRecord_InvalidLevel() {
	err := s.service.Record(s.ctx, &models.RequestLog{Level: "trace"})
	s.ErrorIs(err, ErrInvalidRequestLog)
}

func (s *RequestLogServiceTestSuite) TestRecord_StoreFailure() {
	storeErr := errors.New("disk full")
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storeErr)

	err := s.service.Record(s.ctx, models.NewRequestLog("svc", "GET", "/", 200, ""))
	s.ErrorIs(err, storeErr)
}

func (s *RequestLogServiceTestSuite) TestList() {
	logs := []*models.RequestLog{{Level: models.LogLevelInfo}}
	s.mockRepo.EXPECT().List(gomock.Any(), 10, 5).Return(logs, int64(11), nil)

	result, total, err := s.service.List(s.ctx, 10, 5)

	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal(int64(11), total)
}

func (s *RequestLogServiceTestSuite) TestList_Failure() {
	s.mockRepo.EXPECT().List(gomock.Any(), 0, 50).Return(nil, int64(0), errors.New("boom"))

	_, _, err := s.service.List(s.ctx, 0, 50)
	s.ErrorIs(err, ErrStorageUnavailable)
}
