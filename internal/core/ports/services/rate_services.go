package services

import (
	"context"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
)

// RateSvc exposes stored rate data to the presentation layer.
type RateSvc interface {
	ListRates(ctx context.Context, filter portsrepo.RateFilter) ([]domain.RateRecord, error)
	TargetCurrencies(ctx context.Context, baseCurrency string) ([]string, error)

	// ReportingPeriods returns every year-month with stored data, newest
	// first, each flagged complete or in-progress relative to today.
	ReportingPeriods(ctx context.Context, baseCurrency string) ([]domain.ReportingPeriod, error)
}

// ReferenceRateFetcher retrieves reference-quoted rate tables from the source
// feed. Implemented by the ECB client; faked in tests.
type ReferenceRateFetcher interface {
	// FetchHistory returns one table per published date, oldest first,
	// filtered to dates on or after since.
	FetchHistory(ctx context.Context, since time.Time) ([]domain.ReferenceRateTable, error)
}

// TriangulationSvc converts one day of reference-quoted rates into rates
// against an arbitrary base currency.
type TriangulationSvc interface {
	// Convert re-expresses the table's quotes against baseCurrency, which
	// must itself be quoted in the table with a non-zero rate. Quotes that
	// are missing or zero are skipped for this date only.
	Convert(ctx context.Context, table domain.ReferenceRateTable, baseCurrency string) ([]domain.RateRecord, error)
}
