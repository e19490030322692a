package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/utils/workcal"
	"github.com/shopspring/decimal"
)

// aggregationService derives monthly averages and closing rates from the rate
// store. All grouping happens in memory over a single range query.
type aggregationService struct {
	BaseService
	rateRepo portsrepo.RateReader
}

// NewAggregationService creates a new aggregation service.
func NewAggregationService(rateRepo portsrepo.RateReader) portssvc.AggregationSvc {
	return &aggregationService{rateRepo: rateRepo}
}

var _ portssvc.AggregationSvc = (*aggregationService)(nil)

// MonthlyAverages computes the arithmetic mean of rate and inverse rate per
// target currency over the month's working-day span. Averaging runs over
// unrounded inputs; rounding belongs to the presentation boundary. Currencies
// with no records in the span are absent from the result.
func (s *aggregationService) MonthlyAverages(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) (map[string]domain.MonthlyAggregate, error) {
	days := workcal.WorkingDaysInMonth(year, month)
	if len(days) == 0 {
		// Impossible under Gregorian rules, but the store must not be queried
		// for an empty span.
		return map[string]domain.MonthlyAggregate{}, nil
	}

	from, to := days[0], days[len(days)-1]
	records, err := s.rateRepo.ListRates(ctx, portsrepo.RateFilter{
		From:             &from,
		To:               &to,
		BaseCurrency:     strings.ToUpper(baseCurrency),
		TargetCurrencies: upperAll(currencies),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to query rates for monthly averages",
			slog.Int("year", year),
			slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to query rates for monthly averages: %w", err)
	}

	type accumulator struct {
		rateSum    decimal.Decimal
		inverseSum decimal.Decimal
		count      int
		firstDate  time.Time
		lastDate   time.Time
	}

	groups := make(map[string]*accumulator)
	for _, rec := range records {
		acc, ok := groups[rec.TargetCurrency]
		if !ok {
			acc = &accumulator{firstDate: rec.Date, lastDate: rec.Date}
			groups[rec.TargetCurrency] = acc
		}
		acc.rateSum = acc.rateSum.Add(rec.Rate)
		acc.inverseSum = acc.inverseSum.Add(rec.InverseRate)
		acc.count++
		if rec.Date.Before(acc.firstDate) {
			acc.firstDate = rec.Date
		}
		if rec.Date.After(acc.lastDate) {
			acc.lastDate = rec.Date
		}
	}

	result := make(map[string]domain.MonthlyAggregate, len(groups))
	for code, acc := range groups {
		n := decimal.NewFromInt(int64(acc.count))
		result[code] = domain.MonthlyAggregate{
			Year:               year,
			Month:              month,
			TargetCurrency:     code,
			AverageRate:        acc.rateSum.Div(n),
			AverageInverseRate: acc.inverseSum.Div(n),
			DataPoints:         acc.count,
			FirstDate:          acc.firstDate,
			LastDate:           acc.lastDate,
		}
	}

	return result, nil
}

// ClosingRates returns the record stored on exactly the month's last working
// day per target currency. A rate available only on an earlier date is not a
// closing rate; the currency is simply absent.
func (s *aggregationService) ClosingRates(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) (map[string]domain.ClosingRate, error) {
	lastDay, ok := workcal.LastWorkingDay(year, month)
	if !ok {
		return map[string]domain.ClosingRate{}, nil
	}

	records, err := s.rateRepo.ListRates(ctx, portsrepo.RateFilter{
		From:             &lastDay,
		To:               &lastDay,
		BaseCurrency:     strings.ToUpper(baseCurrency),
		TargetCurrencies: upperAll(currencies),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to query rates for closing rates",
			slog.Int("year", year),
			slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to query rates for closing rates: %w", err)
	}

	result := make(map[string]domain.ClosingRate, len(records))
	for _, rec := range records {
		result[rec.TargetCurrency] = domain.ClosingRate{
			Year:               year,
			Month:              month,
			TargetCurrency:     rec.TargetCurrency,
			ClosingRate:        rec.Rate,
			ClosingInverseRate: rec.InverseRate,
			ClosingDate:        rec.Date,
		}
	}

	return result, nil
}

func upperAll(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = strings.ToUpper(c)
	}
	return out
}
