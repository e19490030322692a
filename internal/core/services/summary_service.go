package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// summaryService merges monthly averages and closing rates into one reporting
// row per currency-month.
type summaryService struct {
	BaseService
	aggregation portssvc.AggregationSvc
}

// NewSummaryService creates a new summary service.
func NewSummaryService(aggregation portssvc.AggregationSvc) portssvc.SummarySvc {
	return &summaryService{aggregation: aggregation}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// MonthlySummary composes both aggregates independently, then full outer joins
// them on target currency. When either side comes back with zero currencies
// the whole summary is empty: an incomplete month produces no report at all
// rather than a partial one.
func (s *summaryService) MonthlySummary(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) ([]domain.MonthlySummary, error) {
	averages, err := s.aggregation.MonthlyAverages(ctx, year, month, baseCurrency, currencies)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly averages for summary: %w", err)
	}

	closings, err := s.aggregation.ClosingRates(ctx, year, month, baseCurrency, currencies)
	if err != nil {
		return nil, fmt.Errorf("failed to compute closing rates for summary: %w", err)
	}

	if len(averages) == 0 || len(closings) == 0 {
		s.LogInfo(ctx, "Monthly summary empty",
			slog.Int("year", year),
			slog.String("month", month.String()),
			slog.Int("average_currencies", len(averages)),
			slog.Int("closing_currencies", len(closings)))
		return []domain.MonthlySummary{}, nil
	}

	codes := make(map[string]struct{}, len(averages)+len(closings))
	for code := range averages {
		codes[code] = struct{}{}
	}
	for code := range closings {
		codes[code] = struct{}{}
	}

	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)

	summaries := make([]domain.MonthlySummary, 0, len(sorted))
	for _, code := range sorted {
		row := domain.MonthlySummary{
			Year:           year,
			Month:          month,
			MonthName:      month.String(),
			TargetCurrency: code,
		}

		avg, hasAvg := averages[code]
		if hasAvg {
			row.AverageRate = decimalPtr(avg.AverageRate)
			row.AverageInverseRate = decimalPtr(avg.AverageInverseRate)
			row.DataPoints = intPtr(avg.DataPoints)
		}

		closing, hasClosing := closings[code]
		if hasClosing {
			row.ClosingRate = decimalPtr(closing.ClosingRate)
			row.ClosingInverseRate = decimalPtr(closing.ClosingInverseRate)
			row.ClosingDate = timePtr(closing.ClosingDate)
		}

		if hasAvg && hasClosing {
			variance := closing.ClosingRate.Sub(avg.AverageRate)
			row.RateVariance = decimalPtr(variance)
			// Guard the division: a zero average leaves the percentage undefined.
			if !avg.AverageRate.IsZero() {
				percent := variance.Div(avg.AverageRate).Mul(decimal.NewFromInt(100))
				row.VariancePercent = decimalPtr(percent)
			}
		}

		summaries = append(summaries, row)
	}

	return summaries, nil
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
func intPtr(i int) *int                             { return &i }
func timePtr(t time.Time) *time.Time                { return &t }
