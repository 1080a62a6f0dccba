package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"
	"expense-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CostHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCostService *service_mocks.MockCostServiceInterface
	handler         *CostHandler
	echo            *echo.Echo
}

func (s *CostHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCostService = service_mocks.NewMockCostServiceInterface(s.ctrl)
	s.handler = NewCostHandler(s.mockCostService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *CostHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCostHandlerSuite(t *testing.T) {
	suite.Run(t, new(CostHandlerTestSuite))
}

func (s *CostHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.AddCost(c))
	return rec
}

func (s *CostHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *CostHandlerTestSuite) TestAddCost_Success() {
	created := &models.Cost{
		ID:          uuid.New(),
		Description: "Lunch",
		Category:    models.CategoryFood,
		UserID:      1,
		Sum:         decimal.RequireFromString("25.50"),
		OccurredAt:  time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	s.mockCostService.EXPECT().
		AddCost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *dto.AddCostRequest) (*models.Cost, error) {
			s.Equal("Lunch", req.Description)
			s.Equal("food", req.Category)
			s.Equal(int64(1), req.UserID)
			s.True(req.Sum.Equal(decimal.RequireFromString("25.50")))
			return created, nil
		})

	rec := s.post(`{"description":"Lunch","category":"food","userid":1,"sum":25.50}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), created.ID.String())
	s.Contains(rec.Body.String(), `"category":"food"`)
}

func (s *CostHandlerTestSuite) TestAddCost_MalformedBody() {
	rec := s.post(`{"description":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.CostCreationFailed), s.errorCode(rec))
}

func (s *CostHandlerTestSuite) TestAddCost_ValidationFailures() {
	bodies := map[string]string{
		"missing description": `{"category":"food","userid":1,"sum":10}`,
		"unknown category":    `{"description":"x","category":"travel","userid":1,"sum":10}`,
		"negative sum":        `{"description":"x","category":"food","userid":1,"sum":-1}`,
		"missing sum":         `{"description":"x","category":"food","userid":1}`,
		"missing user":        `{"description":"x","category":"food","sum":10}`,
	}

	for name, body := range bodies {
		s.Run(name, func() {
			rec := s.post(body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(apperrors.CostCreationFailed), s.errorCode(rec))
		})
	}
}

func (s *CostHandlerTestSuite) TestAddCost_UnknownUser() {
	s.mockCostService.EXPECT().
		AddCost(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrCostUserNotFound)

	rec := s.post(`{"description":"Lunch","category":"food","userid":42,"sum":10}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.CostUserNotFound), s.errorCode(rec))
	s.Contains(rec.Body.String(), "User does not exist")
}

func (s *CostHandlerTestSuite) TestAddCost_RejectedByService() {
	s.mockCostService.EXPECT().
		AddCost(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCost)

	rec := s.post(`{"description":"Lunch","category":"food","userid":1,"sum":10}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.CostCreationFailed), s.errorCode(rec))
}

func (s *CostHandlerTestSuite) TestAddCost_StorageFailure() {
	s.mockCostService.EXPECT().
		AddCost(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(services.ErrStorageUnavailable, errors.New("disk full")))

	rec := s.post(`{"description":"Lunch","category":"food","userid":1,"sum":10}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.SystemInternalError), s.errorCode(rec))
}
