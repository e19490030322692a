package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateReader ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) ListRates(ctx context.Context, filter portsrepo.RateFilter) ([]domain.RateRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateRecord), args.Error(1)
}

func (m *MockRateReader) DistinctTargetCurrencies(ctx context.Context, baseCurrency string) ([]string, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRateReader) DistinctYearMonths(ctx context.Context, baseCurrency string) ([]domain.YearMonth, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearMonth), args.Error(1)
}

// --- Test Suite ---
type AggregationServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockRateReader
	service      portssvc.AggregationSvc
}

func (suite *AggregationServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateReader)
	suite.service = services.NewAggregationService(suite.mockRateRepo)
}

func rateRecord(date time.Time, target, rate, inverse string) domain.RateRecord {
	return domain.RateRecord{
		Date:           date,
		BaseCurrency:   "GBP",
		TargetCurrency: target,
		Rate:           decimal.RequireFromString(rate),
		InverseRate:    decimal.RequireFromString(inverse),
	}
}

// --- MonthlyAverages ---

func (suite *AggregationServiceTestSuite) TestMonthlyAverages_Success() {
	ctx := context.Background()
	aug1 := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	aug15 := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)
	aug30 := time.Date(2024, time.August, 30, 0, 0, 0, 0, time.UTC)

	records := []domain.RateRecord{
		rateRecord(aug15, "USD", "0.95", "1.052631578947368"),
		rateRecord(aug1, "USD", "0.94", "1.063829787234042"),
		rateRecord(aug1, "JPY", "188", "0.005319148936170"),
	}

	suite.mockRateRepo.On("ListRates", ctx, mock.MatchedBy(func(filter portsrepo.RateFilter) bool {
		// August 2024 working days run from the 1st to the 30th.
		return filter.From != nil && filter.From.Equal(aug1) &&
			filter.To != nil && filter.To.Equal(aug30) &&
			filter.BaseCurrency == "GBP"
	})).Return(records, nil).Once()

	averages, err := suite.service.MonthlyAverages(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Require().Len(averages, 2)

	usd := averages["USD"]
	suite.True(usd.AverageRate.Equal(decimal.RequireFromString("0.945")), "got %s", usd.AverageRate)
	suite.Equal(2, usd.DataPoints)
	suite.Equal(aug1, usd.FirstDate)
	suite.Equal(aug15, usd.LastDate)

	jpy := averages["JPY"]
	suite.True(jpy.AverageRate.Equal(decimal.RequireFromString("188")))
	suite.Equal(1, jpy.DataPoints)

	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AggregationServiceTestSuite) TestMonthlyAverages_NoRecords() {
	ctx := context.Background()

	suite.mockRateRepo.On("ListRates", ctx, mock.AnythingOfType("repositories.RateFilter")).
		Return([]domain.RateRecord{}, nil).Once()

	averages, err := suite.service.MonthlyAverages(ctx, 2024, time.June, "GBP", nil)

	suite.Require().NoError(err)
	suite.Empty(averages)
}

func (suite *AggregationServiceTestSuite) TestMonthlyAverages_CurrencyFilterUppercased() {
	ctx := context.Background()

	suite.mockRateRepo.On("ListRates", ctx, mock.MatchedBy(func(filter portsrepo.RateFilter) bool {
		return len(filter.TargetCurrencies) == 2 &&
			filter.TargetCurrencies[0] == "USD" && filter.TargetCurrencies[1] == "JPY"
	})).Return([]domain.RateRecord{}, nil).Once()

	_, err := suite.service.MonthlyAverages(ctx, 2024, time.August, "gbp", []string{"usd", "jpy"})

	suite.Require().NoError(err)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AggregationServiceTestSuite) TestMonthlyAverages_StoreError() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreUnavailableError("connection refused", context.DeadlineExceeded)

	suite.mockRateRepo.On("ListRates", ctx, mock.AnythingOfType("repositories.RateFilter")).
		Return(nil, storeErr).Once()

	_, err := suite.service.MonthlyAverages(ctx, 2024, time.August, "GBP", nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

// --- ClosingRates ---

func (suite *AggregationServiceTestSuite) TestClosingRates_Success() {
	ctx := context.Background()
	aug30 := time.Date(2024, time.August, 30, 0, 0, 0, 0, time.UTC)

	suite.mockRateRepo.On("ListRates", ctx, mock.MatchedBy(func(filter portsrepo.RateFilter) bool {
		return filter.From != nil && filter.From.Equal(aug30) &&
			filter.To != nil && filter.To.Equal(aug30)
	})).Return([]domain.RateRecord{
		rateRecord(aug30, "USD", "0.94", "1.063829787234042"),
	}, nil).Once()

	closings, err := suite.service.ClosingRates(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Require().Len(closings, 1)
	usd := closings["USD"]
	suite.True(usd.ClosingRate.Equal(decimal.RequireFromString("0.94")))
	suite.Equal(aug30, usd.ClosingDate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AggregationServiceTestSuite) TestClosingRates_NothingOnLastWorkingDay() {
	ctx := context.Background()

	// Rates exist earlier in the month but not on the last working day; the
	// store query is bounded to that single day so nothing comes back.
	suite.mockRateRepo.On("ListRates", ctx, mock.AnythingOfType("repositories.RateFilter")).
		Return([]domain.RateRecord{}, nil).Once()

	closings, err := suite.service.ClosingRates(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Empty(closings)
}

func (suite *AggregationServiceTestSuite) TestClosingRates_StoreError() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreUnavailableError("connection refused", context.DeadlineExceeded)

	suite.mockRateRepo.On("ListRates", ctx, mock.AnythingOfType("repositories.RateFilter")).
		Return(nil, storeErr).Once()

	_, err := suite.service.ClosingRates(ctx, 2024, time.August, "GBP", nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

func TestAggregationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}
