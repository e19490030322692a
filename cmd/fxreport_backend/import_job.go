package main

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/middleware"
	"github.com/openfx/fxreport/internal/platform/config"
)

// importJob runs the scheduled ECB import with a bounded context and a
// job-scoped logger.
type importJob struct {
	ingestion portssvc.IngestionSvc
	cfg       *config.Config
	logger    *slog.Logger
}

func newImportJob(ingestion portssvc.IngestionSvc, cfg *config.Config, logger *slog.Logger) *importJob {
	return &importJob{
		ingestion: ingestion,
		cfg:       cfg,
		logger:    logger.With(slog.String("job", "ecb_import")),
	}
}

func (j *importJob) Name() string { return "ecb_import" }

func (j *importJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = middleware.WithLogger(ctx, j.logger)

	summary, err := j.ingestion.ImportHistory(ctx, j.cfg.ECBImportSince)
	if err != nil {
		return err
	}
	j.logger.Info("Scheduled rate import finished",
		slog.Int("tables_seen", summary.TablesSeen),
		slog.Int("records_saved", summary.RecordsSaved),
		slog.Int("records_updated", summary.RecordsUpdated),
		slog.Int("dates_skipped", summary.DatesSkipped))
	return nil
}
