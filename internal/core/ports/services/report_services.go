package services

import (
	"context"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
)

// AggregationSvc derives monthly aggregates from the rate store.
type AggregationSvc interface {
	// MonthlyAverages returns the mean rate per target currency over the
	// month's working-day span. Currencies with no records are absent.
	MonthlyAverages(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) (map[string]domain.MonthlyAggregate, error)

	// ClosingRates returns the rate recorded on exactly the month's last
	// working day, per target currency. No earlier-date fallback.
	ClosingRates(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) (map[string]domain.ClosingRate, error)
}

// SummarySvc composes monthly average and closing aggregates into reporting rows.
type SummarySvc interface {
	// MonthlySummary outer-joins averages and closing rates per currency.
	// When either side is entirely empty the result is empty.
	MonthlySummary(ctx context.Context, year int, month time.Month, baseCurrency string, currencies []string) ([]domain.MonthlySummary, error)
}

// IngestionSvc imports reference-rate history into the rate store.
type IngestionSvc interface {
	ImportHistory(ctx context.Context, since time.Time) (domain.ImportSummary, error)
}
