package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/dto"
	"github.com/openfx/fxreport/internal/handlers"
	"github.com/openfx/fxreport/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ApplicationCurrencyService ---
type MockApplicationCurrencyService struct {
	mock.Mock
}

func (m *MockApplicationCurrencyService) ListActive(ctx context.Context) ([]domain.ApplicationCurrency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationCurrency), args.Error(1)
}

func (m *MockApplicationCurrencyService) ListDetails(ctx context.Context) ([]domain.ApplicationCurrencyDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationCurrencyDetail), args.Error(1)
}

func (m *MockApplicationCurrencyService) Add(ctx context.Context, currencyCode, currencyName, notes string) (*domain.ApplicationCurrency, error) {
	args := m.Called(ctx, currencyCode, currencyName, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationCurrency), args.Error(1)
}

func (m *MockApplicationCurrencyService) Remove(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ApplicationCurrencySvc = (*MockApplicationCurrencyService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockApplicationCurrencyService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockCurrencyService = new(MockApplicationCurrencyService)

	cfg := &config.Config{BaseCurrency: "GBP"}
	services := &portssvc.ServiceContainer{Currency: suite.mockCurrencyService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestAddCurrency_Success() {
	added := &domain.ApplicationCurrency{
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
		IsActive:     true,
		AddedAt:      time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCurrencyService.On("Add", mock.Anything, "USD", "US Dollar", "").
		Return(added, nil).Once()

	body, _ := json.Marshal(dto.AddApplicationCurrencyRequest{
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ApplicationCurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal("US Dollar", resp.CurrencyName)
	suite.Equal("2024-08-01", resp.AddedAt)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestAddCurrency_InvalidCodeRejectedByBinding() {
	body := []byte(`{"currencyCode":"usd1"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestAddCurrency_ValidationErrorMapsTo400() {
	suite.mockCurrencyService.On("Add", mock.Anything, "GBP", "", "").
		Return(nil, apperrors.NewValidationError("base currency GBP is implicit and cannot be added")).Once()

	body := []byte(`{"currencyCode":"GBP"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestRemoveCurrency_Success() {
	suite.mockCurrencyService.On("Remove", mock.Anything, "USD").Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/currencies/usd", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestRemoveCurrency_NotFoundMapsTo404() {
	suite.mockCurrencyService.On("Remove", mock.Anything, "ZZZ").
		Return(apperrors.NewNotFoundError("application currency ZZZ not found")).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/currencies/ZZZ", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_StoreUnavailableMapsTo503() {
	suite.mockCurrencyService.On("ListActive", mock.Anything).
		Return(nil, apperrors.NewStoreUnavailableError("failed to list application currencies", context.DeadlineExceeded)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	currencies := []domain.ApplicationCurrency{
		{CurrencyCode: "EUR", CurrencyName: "Euro", IsActive: true, AddedAt: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{CurrencyCode: "USD", CurrencyName: "US Dollar", IsActive: true, AddedAt: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockCurrencyService.On("ListActive", mock.Anything).Return(currencies, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ApplicationCurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("EUR", resp[0].CurrencyCode)
}

// --- Run Test Suite ---
func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
