package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openfx/fxreport/internal/core/domain"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
)

// ingestionService pulls reference-rate history from the source feed,
// triangulates it to the reporting base currency and upserts the result.
type ingestionService struct {
	BaseService
	fetcher       portssvc.ReferenceRateFetcher
	triangulation portssvc.TriangulationSvc
	rateRepo      portsrepo.RateWriter
	baseCurrency  string
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(fetcher portssvc.ReferenceRateFetcher, triangulation portssvc.TriangulationSvc, rateRepo portsrepo.RateWriter, baseCurrency string) portssvc.IngestionSvc {
	return &ingestionService{
		fetcher:       fetcher,
		triangulation: triangulation,
		rateRepo:      rateRepo,
		baseCurrency:  baseCurrency,
	}
}

var _ portssvc.IngestionSvc = (*ingestionService)(nil)

// ImportHistory fetches all reference tables published since the given date,
// converts each to the base currency and upserts the records. The upsert is
// keyed on (date, base, target), so re-running an import is a no-op apart from
// refreshed values. Dates without a usable base quote are skipped, never fatal.
func (s *ingestionService) ImportHistory(ctx context.Context, since time.Time) (domain.ImportSummary, error) {
	var summary domain.ImportSummary

	tables, err := s.fetcher.FetchHistory(ctx, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch reference rate history",
			slog.Time("since", since))
		return summary, fmt.Errorf("failed to fetch reference rate history: %w", err)
	}
	summary.TablesSeen = len(tables)

	for _, table := range tables {
		records, err := s.triangulation.Convert(ctx, table, s.baseCurrency)
		if err != nil {
			return summary, fmt.Errorf("failed to triangulate rates for %s: %w", table.Date.Format("2006-01-02"), err)
		}
		if len(records) == 0 {
			summary.DatesSkipped++
			continue
		}

		inserted, updated, err := s.rateRepo.SaveRates(ctx, records)
		if err != nil {
			s.LogError(ctx, err, "Failed to save triangulated rates",
				slog.Time("date", table.Date))
			return summary, fmt.Errorf("failed to save rates for %s: %w", table.Date.Format("2006-01-02"), err)
		}
		summary.RecordsSaved += inserted
		summary.RecordsUpdated += updated
	}

	s.LogInfo(ctx, "Reference rate import finished",
		slog.Int("tables_seen", summary.TablesSeen),
		slog.Int("records_saved", summary.RecordsSaved),
		slog.Int("records_updated", summary.RecordsUpdated),
		slog.Int("dates_skipped", summary.DatesSkipped))
	return summary, nil
}
