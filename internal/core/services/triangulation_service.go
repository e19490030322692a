package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openfx/fxreport/internal/apperrors"
	"github.com/openfx/fxreport/internal/core/domain"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// triangulationService converts reference-quoted rate tables to an arbitrary
// base currency. Direction convention: a produced record's Rate is target
// currency per 1 unit of base currency, i.e. ref[target] / ref[base].
type triangulationService struct {
	BaseService
}

// NewTriangulationService creates a new triangulation service.
func NewTriangulationService() portssvc.TriangulationSvc {
	return &triangulationService{}
}

var _ portssvc.TriangulationSvc = (*triangulationService)(nil)

// Convert re-expresses one day of reference-quoted rates against baseCurrency.
// A missing or zero base quote yields an empty result for the date, not an
// error: partial-day failures must not abort a batch import. Currencies with
// missing or zero quotes are skipped for this date only.
func (s *triangulationService) Convert(ctx context.Context, table domain.ReferenceRateTable, baseCurrency string) ([]domain.RateRecord, error) {
	base := strings.ToUpper(baseCurrency)
	if len(base) != 3 {
		return nil, apperrors.NewValidationError("base currency code must be 3 letters")
	}

	baseQuote, ok := table.Rates[base]
	if !ok || baseQuote.IsZero() {
		s.LogDebug(ctx, "No usable base currency quote for date, skipping",
			slog.String("base_currency", base),
			slog.Time("date", table.Date))
		return []domain.RateRecord{}, nil
	}

	now := time.Now()
	day := table.Date.Truncate(24 * time.Hour)

	records := make([]domain.RateRecord, 0, len(table.Rates))

	// The reference currency never appears as a column in its own table, so a
	// synthetic reciprocal record is emitted for it: 1 base = 1/ref[base]
	// reference units, and the inverse is the base quote itself.
	records = append(records, domain.RateRecord{
		RateID:         uuid.NewString(),
		Date:           day,
		BaseCurrency:   base,
		TargetCurrency: strings.ToUpper(table.ReferenceCurrency),
		Rate:           inverseOf(baseQuote),
		InverseRate:    baseQuote,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})

	codes := make([]string, 0, len(table.Rates))
	for code := range table.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		code = strings.ToUpper(code)
		if code == base || code == strings.ToUpper(table.ReferenceCurrency) {
			continue
		}

		quote := table.Rates[code]
		if quote.IsZero() {
			s.LogDebug(ctx, "Skipping zero reference quote",
				slog.String("currency", code),
				slog.Time("date", table.Date))
			continue
		}

		rate := quote.Div(baseQuote)
		records = append(records, domain.RateRecord{
			RateID:         uuid.NewString(),
			Date:           day,
			BaseCurrency:   base,
			TargetCurrency: code,
			Rate:           rate,
			InverseRate:    inverseOf(rate),
			AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
	}

	return records, nil
}

// inverseOf returns 1/rate. A zero rate yields a zero inverse; the legacy feed
// stored that substitution and downstream consumers depend on it.
func inverseOf(rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Div(rate)
}
