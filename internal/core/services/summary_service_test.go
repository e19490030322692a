package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AggregationSvc ---
type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) MonthlyAverages(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) (map[string]domain.MonthlyAggregate, error) {
	args := m.Called(ctx, year, month, baseCurrency, currencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MonthlyAggregate), args.Error(1)
}

func (m *MockAggregationService) ClosingRates(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) (map[string]domain.ClosingRate, error) {
	args := m.Called(ctx, year, month, baseCurrency, currencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ClosingRate), args.Error(1)
}

// --- Test Suite ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockAggregation *MockAggregationService
	service         portssvc.SummarySvc
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockAggregation = new(MockAggregationService)
	suite.service = services.NewSummaryService(suite.mockAggregation)
}

func monthlyAggregate(target, avgRate string, points int) domain.MonthlyAggregate {
	return domain.MonthlyAggregate{
		Year:           2024,
		Month:          time.August,
		TargetCurrency: target,
		AverageRate:    decimal.RequireFromString(avgRate),
		DataPoints:     points,
	}
}

func closingRate(target, rate string) domain.ClosingRate {
	return domain.ClosingRate{
		Year:           2024,
		Month:          time.August,
		TargetCurrency: target,
		ClosingRate:    decimal.RequireFromString(rate),
		ClosingDate:    time.Date(2024, time.August, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *SummaryServiceTestSuite) TestMonthlySummary_FullOuterJoin() {
	ctx := context.Background()

	averages := map[string]domain.MonthlyAggregate{
		"USD": monthlyAggregate("USD", "0.945", 22),
		"JPY": monthlyAggregate("JPY", "188", 22),
	}
	closings := map[string]domain.ClosingRate{
		"USD": closingRate("USD", "0.94"),
		"CAD": closingRate("CAD", "1.71"),
	}

	suite.mockAggregation.On("MonthlyAverages", ctx, 2024, time.August, "GBP", mock.Anything).Return(averages, nil).Once()
	suite.mockAggregation.On("ClosingRates", ctx, 2024, time.August, "GBP", mock.Anything).Return(closings, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 3)

	// Rows come back sorted by currency code.
	suite.Equal("CAD", summaries[0].TargetCurrency)
	suite.Equal("JPY", summaries[1].TargetCurrency)
	suite.Equal("USD", summaries[2].TargetCurrency)

	// CAD has a closing rate but no average side.
	cad := summaries[0]
	suite.Nil(cad.AverageRate)
	suite.Nil(cad.DataPoints)
	suite.Require().NotNil(cad.ClosingRate)
	suite.Nil(cad.RateVariance)
	suite.Nil(cad.VariancePercent)

	// JPY has an average but no closing side.
	jpy := summaries[1]
	suite.Require().NotNil(jpy.AverageRate)
	suite.Nil(jpy.ClosingRate)
	suite.Nil(jpy.ClosingDate)
	suite.Nil(jpy.RateVariance)

	// USD carries both sides and the derived variance.
	usd := summaries[2]
	suite.Require().NotNil(usd.RateVariance)
	suite.True(usd.RateVariance.Equal(decimal.RequireFromString("-0.005")), "got %s", usd.RateVariance)
	suite.Require().NotNil(usd.VariancePercent)
	suite.True(usd.VariancePercent.Round(2).Equal(decimal.RequireFromString("-0.53")), "got %s", usd.VariancePercent)
	suite.Equal("August", usd.MonthName)

	suite.mockAggregation.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestMonthlySummary_EmptyWhenNoAverages() {
	ctx := context.Background()

	suite.mockAggregation.On("MonthlyAverages", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(map[string]domain.MonthlyAggregate{}, nil).Once()
	suite.mockAggregation.On("ClosingRates", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(map[string]domain.ClosingRate{"USD": closingRate("USD", "0.94")}, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Empty(summaries)
}

func (suite *SummaryServiceTestSuite) TestMonthlySummary_EmptyWhenNoClosings() {
	ctx := context.Background()

	suite.mockAggregation.On("MonthlyAverages", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(map[string]domain.MonthlyAggregate{"USD": monthlyAggregate("USD", "0.945", 22)}, nil).Once()
	suite.mockAggregation.On("ClosingRates", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(map[string]domain.ClosingRate{}, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Empty(summaries)
}

func (suite *SummaryServiceTestSuite) TestMonthlySummary_ZeroAverageLeavesPercentNil() {
	ctx := context.Background()

	suite.mockAggregation.On("MonthlyAverages", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(map[string]domain.MonthlyAggregate{"XXX": monthlyAggregate("XXX", "0", 1)}, nil).Once()
	suite.mockAggregation.On("ClosingRates", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(map[string]domain.ClosingRate{"XXX": closingRate("XXX", "1")}, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, 2024, time.August, "GBP", nil)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	row := summaries[0]
	suite.Require().NotNil(row.RateVariance)
	suite.True(row.RateVariance.Equal(decimal.RequireFromString("1")))
	suite.Nil(row.VariancePercent)
}

func (suite *SummaryServiceTestSuite) TestMonthlySummary_AggregationError() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreUnavailableError("connection refused", context.DeadlineExceeded)

	suite.mockAggregation.On("MonthlyAverages", ctx, 2024, time.August, "GBP", mock.Anything).
		Return(nil, storeErr).Once()

	_, err := suite.service.MonthlySummary(ctx, 2024, time.August, "GBP", nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
