package repositories

import (
	"context"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
)

// RateFilter narrows a rate store query. Nil/empty fields are ignored.
type RateFilter struct {
	From             *time.Time
	To               *time.Time
	BaseCurrency     string
	TargetCurrencies []string
}

// RateReader defines read operations over stored rate records.
type RateReader interface {
	// ListRates returns matching records ordered by date descending then
	// target currency ascending.
	ListRates(ctx context.Context, filter RateFilter) ([]domain.RateRecord, error)

	// DistinctTargetCurrencies returns every target currency stored against
	// the given base, sorted ascending.
	DistinctTargetCurrencies(ctx context.Context, baseCurrency string) ([]string, error)

	// DistinctYearMonths returns every year-month with stored data for the
	// given base, newest first.
	DistinctYearMonths(ctx context.Context, baseCurrency string) ([]domain.YearMonth, error)
}

// RateWriter defines write operations for the ingestion collaborator.
type RateWriter interface {
	// SaveRates upserts records keyed on (date, base, target). Re-saving the
	// same records must not create duplicates.
	SaveRates(ctx context.Context, records []domain.RateRecord) (inserted, updated int, err error)
}

// RateRepositoryFacade combines all rate store operations.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
